//go:build !no_md5

package hashers

import (
	"crypto/md5"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.MD5, familyMD5, md5.Size, func() common.Digest { return md5.New() }))
}
