//go:build !no_sha3

package hashers

import (
	"golang.org/x/crypto/sha3"

	"github.com/guilt/hashfn/pkg/common"
	"github.com/guilt/hashfn/pkg/hashers/xof"
)

// Output widths for the SHAKE functions: twice their security level.
const (
	shake128Size = 32
	shake256Size = 64
)

func init() {
	common.AddHasher(digestHasher(common.SHA3_224, familySHA3, 28, func() common.Digest { return sha3.New224() }))
	common.AddHasher(digestHasher(common.SHA3_256, familySHA3, 32, func() common.Digest { return sha3.New256() }))
	common.AddHasher(digestHasher(common.SHA3_384, familySHA3, 48, func() common.Digest { return sha3.New384() }))
	common.AddHasher(digestHasher(common.SHA3_512, familySHA3, 64, func() common.Digest { return sha3.New512() }))
	common.AddHasher(digestHasher(common.SHAKE128, familySHA3, shake128Size, func() common.Digest {
		return xof.New(sha3.NewShake128(), shake128Size)
	}))
	common.AddHasher(digestHasher(common.SHAKE256, familySHA3, shake256Size, func() common.Digest {
		return xof.New(sha3.NewShake256(), shake256Size)
	}))
}
