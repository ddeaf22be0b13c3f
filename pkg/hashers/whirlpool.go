//go:build !no_whirlpool

package hashers

import (
	"github.com/jzelinskie/whirlpool"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.WHIRLPOOL, familyWhirlpool, 64, func() common.Digest { return whirlpool.New() }))
}
