//go:build no_md4

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyMD4, common.MD4)
}
