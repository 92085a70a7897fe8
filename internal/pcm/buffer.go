// Package pcm holds the owned sample buffers that flow through the
// downsampling pipeline, together with the byte codec and the int16
// narrowing policies.
package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrAllocation indicates that a sample buffer could not be allocated.
var ErrAllocation = errors.New("buffer allocation failed")

// Buffer is an owned sequence of 16-bit mono samples.
//
// A Buffer has exactly one owner. Once the owner calls Release the
// buffer is empty and must not be used again.
type Buffer struct {
	data []int16
}

// Alloc allocates a zeroed buffer of n samples. limit caps the size in
// bytes; zero or negative means DefaultMaxBytes.
func Alloc(n, limit int) (buf *Buffer, err error) {
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrAllocation, n)
	}
	if n > limit/BytesPerSample {
		return nil, fmt.Errorf("%w: %d samples exceed limit of %d bytes", ErrAllocation, n, limit)
	}

	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	return &Buffer{data: make([]int16, n)}, nil
}

// Wrap takes ownership of samples without copying.
func Wrap(samples []int16) *Buffer {
	return &Buffer{data: samples}
}

// Decode allocates a buffer holding the little-endian samples in b.
// A trailing odd byte is ignored.
func Decode(b []byte, limit int) (*Buffer, error) {
	buf, err := Alloc(len(b)/BytesPerSample, limit)
	if err != nil {
		return nil, err
	}
	for i := range buf.data {
		buf.data[i] = int16(binary.LittleEndian.Uint16(b[i*BytesPerSample:]))
	}
	return buf, nil
}

// Encode returns samples as little-endian bytes.
func Encode(samples []int16) []byte {
	out := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*BytesPerSample:], uint16(s))
	}
	return out
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.data)
}

// ByteLen returns the encoded size in bytes.
func (b *Buffer) ByteLen() int {
	return len(b.data) * BytesPerSample
}

// Samples returns the underlying samples. The slice is still owned by b.
func (b *Buffer) Samples() []int16 {
	return b.data
}

// Bytes returns the samples encoded as little-endian bytes.
func (b *Buffer) Bytes() []byte {
	return Encode(b.data)
}

// WriteTo writes the encoded samples to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Release drops the samples so they can be collected.
func (b *Buffer) Release() {
	b.data = nil
}

// Released reports whether Release has been called or the buffer is empty.
func (b *Buffer) Released() bool {
	return b.data == nil
}
