//go:build !no_sm3

package hashers

import (
	"github.com/emmansun/gmsm/sm3"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(digestHasher(common.SM3, familySM3, 32, func() common.Digest { return sm3.New() }))
}
