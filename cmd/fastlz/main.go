// SPDX-License-Identifier: MIT

// Command fastlz compresses or decompresses a single file using the FastLZ
// wire format.
package main

import (
	"fmt"
	"os"

	"github.com/gofastlz/fastlz"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "usage: %s c|C|d input output\n", os.Args[0])
		os.Exit(1)
	}

	mode, inPath, outPath := os.Args[1], os.Args[2], os.Args[3]

	in, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", inPath, err)
		os.Exit(1)
	}

	var out []byte
	switch mode {
	case "c":
		out, err = fastlz.Compress(in, fastlz.Level1)
	case "C":
		out, err = fastlz.Compress(in, fastlz.Level2)
	case "d":
		out, err = fastlz.Decompress(in, len(in)*3)
	default:
		fmt.Fprintf(os.Stderr, "invalid mode %q\n", mode)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inPath, err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		os.Exit(1)
	}
}
