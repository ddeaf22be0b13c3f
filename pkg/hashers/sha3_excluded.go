//go:build no_sha3

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familySHA3, common.SHA3_224, common.SHA3_256, common.SHA3_384, common.SHA3_512, common.SHAKE128, common.SHAKE256)
}
