// Package fnvz implements FNV-0, the original Fowler–Noll–Vo hash with a zero
// offset basis. hash/fnv only provides FNV-1 and FNV-1a.
package fnvz

import "hash"

const (
	prime32 = 16777619
	prime64 = 1099511628211
)

type sum32 uint32

type sum64 uint64

// New32 returns a 32-bit FNV-0 hash.
func New32() hash.Hash32 {
	var s sum32
	return &s
}

// New64 returns a 64-bit FNV-0 hash.
func New64() hash.Hash64 {
	var s sum64
	return &s
}

func (s *sum32) Write(data []byte) (int, error) {
	h := *s
	for _, c := range data {
		h *= prime32
		h ^= sum32(c)
	}
	*s = h
	return len(data), nil
}

func (s *sum64) Write(data []byte) (int, error) {
	h := *s
	for _, c := range data {
		h *= prime64
		h ^= sum64(c)
	}
	*s = h
	return len(data), nil
}

func (s *sum32) Reset()         { *s = 0 }
func (s *sum64) Reset()         { *s = 0 }
func (s *sum32) Size() int      { return 4 }
func (s *sum64) Size() int      { return 8 }
func (s *sum32) BlockSize() int { return 1 }
func (s *sum64) BlockSize() int { return 1 }
func (s *sum32) Sum32() uint32  { return uint32(*s) }
func (s *sum64) Sum64() uint64  { return uint64(*s) }

func (s *sum32) Sum(in []byte) []byte {
	v := uint32(*s)
	return append(in, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (s *sum64) Sum(in []byte) []byte {
	v := uint64(*s)
	return append(in, byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32), byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
