// Package xof turns extendable-output functions into fixed-width digests.
package xof

import "io"

// XOF is an extendable-output function: absorb with Write, squeeze with Read.
type XOF interface {
	io.Writer
	io.Reader
}

// Digest squeezes a fixed number of bytes out of an XOF on Sum.
// Sum finalizes the underlying function and must be called once.
type Digest struct {
	x    XOF
	size int
}

// New wraps x so that Sum returns size bytes of output.
func New(x XOF, size int) *Digest {
	return &Digest{x: x, size: size}
}

// Write absorbs p.
func (d *Digest) Write(p []byte) (int, error) {
	return d.x.Write(p)
}

// Sum appends size bytes of output to b. SHAKE and KangarooTwelve reads never
// fail, so a failed squeeze is a broken XOF and panics.
func (d *Digest) Sum(b []byte) []byte {
	out := make([]byte, d.size)
	if _, err := io.ReadFull(d.x, out); err != nil {
		panic("xof: squeezing output: " + err.Error())
	}
	return append(b, out...)
}

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int {
	return d.size
}
