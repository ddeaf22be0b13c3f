//go:build no_blake2

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyBlake2, common.BLAKE2B, common.BLAKE2S)
}
