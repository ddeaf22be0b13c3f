//go:build no_md5

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyMD5, common.MD5)
}
