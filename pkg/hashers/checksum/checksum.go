// Package checksum is the checksum driver: it streams an input into any
// integer-finalizing hash through one fixed scratch buffer.
package checksum

import (
	"hash"
	"io"

	"github.com/guilt/hashfn/pkg/common"
)

// BufferSize is the size of the scratch buffer used for every read.
const BufferSize = 1024

// ComputeChecksum feeds the whole reader into a fresh checksum from newChecksum
// and returns the lowercase hex of the result.
//
// A read fault is not returned as an error: its text becomes the result.
// Callers print it like any other hash and exit successfully. Only io.EOF
// ends the stream; io.ErrUnexpectedEOF from the source is a fault.
//
// Reading stops at the first zero-length or short read. Every read fills the
// buffer as far as the reader allows, so a short read only happens at end of
// stream, even for pipes that deliver data in small pieces.
func ComputeChecksum(reader io.Reader, newChecksum func() common.Checksum) string {
	h := newChecksum()
	buf := make([]byte, BufferSize)
	for {
		n, err := fill(reader, buf)
		if err != nil && err != io.EOF {
			return err.Error()
		}
		h.Write(buf[:n])
		if n == 0 || n < BufferSize || err == io.EOF {
			break
		}
	}
	return common.FormatChecksum(h.Sum64())
}

// fill reads into buf until it is full or the reader returns an error.
// Unlike io.ReadFull it hands back the reader's own error unchanged.
func fill(r io.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

type hash32 struct {
	hash.Hash32
}

func (h hash32) Sum64() uint64 {
	return uint64(h.Sum32())
}

// Lift32 adapts a 32-bit hash to the Checksum interface.
func Lift32(h hash.Hash32) common.Checksum {
	return hash32{h}
}
