//go:build no_fast

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyFast, common.XXHASH, common.XXH3, common.CITYHASH)
}
