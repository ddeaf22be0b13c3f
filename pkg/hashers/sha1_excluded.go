//go:build no_sha1

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familySHA1, common.SHA1)
}
