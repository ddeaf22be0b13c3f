//go:build no_sha2

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familySHA2, common.SHA224, common.SHA256, common.SHA384, common.SHA512, common.SHA512_224, common.SHA512_256)
}
