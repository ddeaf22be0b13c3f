//go:build !no_sha1

package hashers

import (
	"crypto/sha1"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.SHA1, familySHA1, sha1.Size, func() common.Digest { return sha1.New() }))
}
