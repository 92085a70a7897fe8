// Package downsampler converts raw 16-bit mono PCM sampled at 48 kHz into
// the equivalent stream at 44.1 kHz.
//
// Conversion runs in two stages over a whole in-memory buffer:
//
//   - a windowed-sinc FIR low-pass filter (Hanning window, order J = 148 for
//     the default 21 kHz edge and 1 kHz transition) removes content that
//     would alias at the lower rate;
//   - linear interpolation then picks output sample i at input position
//     i·48/44.1.
//
// # Quick Start
//
// Convert a headerless PCM file:
//
//	if err := downsampler.ConvertFile("in.pcm", "out.pcm"); err != nil {
//	    log.Fatal(err)
//	}
//
// Convert bytes already in memory with a reusable converter:
//
//	conv, err := downsampler.New(downsampler.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := conv.Convert(input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(res.Bytes())
//
// # Output Length
//
// For S input bytes the output holds floor(S·44.1/48) bytes rounded down to
// a whole sample. The length is derived from the byte count rather than the
// sample count so that results match existing tooling exactly; see
// [OutputByteSize].
//
// # Sample Narrowing
//
// Filter and interpolation results are truncated toward zero and stored as
// int16. By default out-of-range values wrap like a two's-complement cast,
// which is bit compatible with existing output. Set [Config.Narrowing] to
// [NarrowSaturate] to clamp instead. Either way the number of out-of-range
// values is reported in [Result.Narrowing].
//
// # Status Strings
//
// [Resample] is the file-to-file boundary call used by host applications.
// It collapses every outcome into one of "success", "failed fopen",
// "failed alloc" or "failed resample"; use [Status] to do the same for an
// error returned elsewhere.
package downsampler
