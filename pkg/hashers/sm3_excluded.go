//go:build no_sm3

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familySM3, common.SM3)
}
