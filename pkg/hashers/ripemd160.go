//go:build !no_ripemd160

package hashers

import (
	"golang.org/x/crypto/ripemd160"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.RIPEMD160, familyRIPEMD160, ripemd160.Size, func() common.Digest { return ripemd160.New() }))
}
