//go:build no_kangarootwelve

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyKangarooTwelve, common.KANGAROOTWELVE)
}
