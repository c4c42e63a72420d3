// SPDX-License-Identifier: MIT

package fastlz

import "sync"

// compressorPool recycles Compressor values (each carrying a 32 KiB hash
// table) across calls to Compress so a hot path doesn't pay for a fresh
// allocation and zero-fill every time.
var compressorPool = sync.Pool{
	New: func() any {
		return new(Compressor)
	},
}

func acquireCompressor() *Compressor {
	return compressorPool.Get().(*Compressor)
}

func releaseCompressor(c *Compressor) {
	compressorPool.Put(c)
}
