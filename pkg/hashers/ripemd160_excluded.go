//go:build no_ripemd160

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyRIPEMD160, common.RIPEMD160)
}
