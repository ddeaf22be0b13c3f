//go:build no_blake3

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyBlake3, common.BLAKE3)
}
