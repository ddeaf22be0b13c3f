//go:build !no_blake2

package hashers

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.BLAKE2B, familyBlake2, blake2b.Size, func() common.Digest {
		h, _ := blake2b.New512(nil)
		return h
	}))
	common.AddHasher(digestHasher(common.BLAKE2S, familyBlake2, blake2s.Size, func() common.Digest {
		h, _ := blake2s.New256(nil)
		return h
	}))
}
