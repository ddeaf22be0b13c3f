//go:build !no_kangarootwelve

package hashers

import (
	"github.com/mimoo/GoKangarooTwelve/K12"

	"github.com/guilt/hashfn/pkg/common"
	"github.com/guilt/hashfn/pkg/hashers/xof"
)

const kangarooTwelveSize = 32

func init() {
	common.AddHasher(digestHasher(common.KANGAROOTWELVE, familyKangarooTwelve, kangarooTwelveSize, func() common.Digest {
		// No customization string, as in the reference test vectors.
		state := K12.NewK12(nil)
		return xof.New(&state, kangarooTwelveSize)
	}))
}
