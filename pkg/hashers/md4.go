//go:build !no_md4

package hashers

import (
	"golang.org/x/crypto/md4"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.MD4, familyMD4, md4.Size, func() common.Digest { return md4.New() }))
}
