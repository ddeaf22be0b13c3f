//go:build no_whirlpool

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyWhirlpool, common.WHIRLPOOL)
}
