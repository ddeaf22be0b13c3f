// Package fletcher implements the Fletcher-16 checksum.
package fletcher

import "hash"

// Size16 is the size of a Fletcher-16 checksum in bytes.
const Size16 = 2

// Largest run of bytes that can be summed before the 32-bit accumulators
// have to be reduced modulo 255.
const nmax = 5802

type digest struct {
	sum1, sum2 uint32
}

// New16 returns a Fletcher-16 checksum. Its value is sum2<<8 | sum1.
func New16() hash.Hash32 {
	return &digest{}
}

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	s1, s2 := d.sum1, d.sum2
	for len(p) > 0 {
		q := p
		if len(q) > nmax {
			q = q[:nmax]
		}
		p = p[len(q):]
		for _, b := range q {
			s1 += uint32(b)
			s2 += s1
		}
		s1 %= 255
		s2 %= 255
	}
	d.sum1, d.sum2 = s1, s2
	return n, nil
}

func (d *digest) Sum32() uint32 {
	return d.sum2<<8 | d.sum1
}

func (d *digest) Sum(b []byte) []byte {
	return append(b, byte(d.sum2), byte(d.sum1))
}

func (d *digest) Reset()         { d.sum1, d.sum2 = 0, 0 }
func (d *digest) Size() int      { return Size16 }
func (d *digest) BlockSize() int { return 1 }
