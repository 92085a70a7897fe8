// Command downsample converts 48 kHz mono 16-bit PCM audio to 44.1 kHz.
//
// Usage:
//
//	downsample [flags] <command> [args]
//
// Commands:
//
//	convert  - convert a headerless PCM file
//	wav      - convert a 48 kHz mono 16-bit WAV file
//	filter   - show the anti-aliasing filter and its response
//	info     - show converter configuration
//
// Flags may also be given in a YAML file passed with --config:
//
//	narrowing: saturate
//	simd: true
//	max_input_bytes: 104857600
//	verbose: true
package main

import (
	"fmt"
	"os"

	"github.com/tphakala/go-pcm-downsampler/cmd/downsample/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
