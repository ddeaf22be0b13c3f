//go:build !no_blake3

package hashers

import (
	"github.com/zeebo/blake3"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.BLAKE3, familyBlake3, 32, func() common.Digest { return blake3.New() }))
}
