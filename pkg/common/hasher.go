package common

import (
	"fmt"
	"io"
)

// Kind tells which driver computes an algorithm.
type Kind int

const (
	// KindUnavailable marks an algorithm whose family was excluded from the build.
	KindUnavailable Kind = iota
	// KindDigest algorithms finalize to a fixed-width byte array.
	KindDigest
	// KindChecksum algorithms finalize to an unsigned integer.
	KindChecksum
)

func (k Kind) String() string {
	switch k {
	case KindDigest:
		return "digest"
	case KindChecksum:
		return "checksum"
	default:
		return "unavailable"
	}
}

// Digest absorbs byte chunks and finalizes to a fixed-width byte array.
// Every hash.Hash satisfies it.
type Digest interface {
	io.Writer
	Sum(b []byte) []byte
}

// Checksum absorbs byte chunks and finalizes to an unsigned integer.
// Every hash.Hash64 satisfies it.
type Checksum interface {
	io.Writer
	Sum64() uint64
}

// Hasher is a registry entry binding an algorithm to its driver and primitive.
type Hasher struct {
	Algo   Algorithm
	Name   string
	Family string
	Kind   Kind
	// Size is the width of the finalized result in bytes, 0 when unavailable.
	Size int

	// Placeholder is printed instead of a hash when the family is not compiled in.
	Placeholder string

	// Compute runs the whole reader through a fresh hash state and returns the
	// formatted result.
	Compute func(reader io.Reader) (string, error)
}

// Available reports whether the algorithm's family was compiled in.
func (h Hasher) Available() bool {
	return h.Kind != KindUnavailable
}

// Aliases returns the alternative flag names of the hasher's algorithm.
func (h Hasher) Aliases() []string {
	return h.Algo.Aliases()
}

// NotCompiledWith returns the placeholder text reported for an excluded family.
func NotCompiledWith(family string) string {
	return fmt.Sprintf("not compiled with %s", family)
}
