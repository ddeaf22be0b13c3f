package fnvz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFNV32Zero(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"abc", 0x84f09160},
		{"abcde", 0xb2b39969},
		{"123456789", 0xd8d70bf1},
	}
	for _, tt := range tests {
		h := New32()
		h.Write([]byte(tt.in))
		assert.Equal(t, tt.want, h.Sum32(), tt.in)
	}
}

func TestFNV64Zero(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"abc", 0x14984000117d8a0},
		{"abcde", 0x77018b280326f529},
		{"123456789", 0xb8fb573c21fe68f1},
	}
	for _, tt := range tests {
		h := New64()
		h.Write([]byte(tt.in))
		assert.Equal(t, tt.want, h.Sum64(), tt.in)
	}
}

func TestSumIsBigEndian(t *testing.T) {
	h := New32()
	h.Write([]byte("abc"))
	assert.Equal(t, []byte{0x84, 0xf0, 0x91, 0x60}, h.Sum(nil))
	assert.Equal(t, 4, h.Size())
	h.Reset()
	assert.Equal(t, uint32(0), h.Sum32())
}
