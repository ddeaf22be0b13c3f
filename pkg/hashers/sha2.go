//go:build !no_sha2

package hashers

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.SHA224, familySHA2, sha256.Size224, func() common.Digest { return sha256.New224() }))
	common.AddHasher(digestHasher(common.SHA256, familySHA2, sha256.Size, func() common.Digest { return sha256.New() }))
	common.AddHasher(digestHasher(common.SHA384, familySHA2, sha512.Size384, func() common.Digest { return sha512.New384() }))
	common.AddHasher(digestHasher(common.SHA512, familySHA2, sha512.Size, func() common.Digest { return sha512.New() }))
	common.AddHasher(digestHasher(common.SHA512_224, familySHA2, sha512.Size224, func() common.Digest { return sha512.New512_224() }))
	common.AddHasher(digestHasher(common.SHA512_256, familySHA2, sha512.Size256, func() common.Digest { return sha512.New512_256() }))
}
