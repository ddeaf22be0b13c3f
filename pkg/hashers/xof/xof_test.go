package xof

import (
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"
)

func TestDigestShake128Empty(t *testing.T) {
	d := New(sha3.NewShake128(), 32)
	assert.Equal(t, 32, d.Size())
	assert.Equal(t, "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26", hex.EncodeToString(d.Sum(nil)))
}

func TestDigestMatchesOneShot(t *testing.T) {
	d := New(sha3.NewShake256(), 64)
	d.Write([]byte("ab"))
	d.Write([]byte("c"))

	want := make([]byte, 64)
	sha3.ShakeSum256(want, []byte("abc"))
	assert.Equal(t, want, d.Sum(nil))
}

func TestDigestSumAppends(t *testing.T) {
	d := New(sha3.NewShake128(), 4)
	out := d.Sum([]byte{0xaa})
	assert.Len(t, out, 5)
	assert.Equal(t, byte(0xaa), out[0])
}

type shortXOF struct{ n int }

func (x *shortXOF) Write(p []byte) (int, error) { return len(p), nil }

func (x *shortXOF) Read(p []byte) (int, error) {
	if x.n == 0 {
		return 0, io.EOF
	}
	n := min(len(p), x.n)
	x.n -= n
	return n, nil
}

func TestDigestSumPanicsOnShortOutput(t *testing.T) {
	d := New(&shortXOF{n: 8}, 32)
	assert.PanicsWithValue(t, "xof: squeezing output: unexpected EOF", func() { d.Sum(nil) })
}
