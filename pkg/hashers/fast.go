//go:build !no_fast

package hashers

import (
	"github.com/cespare/xxhash"
	"github.com/zeebo/xxh3"
	"github.com/zentures/cityhash"

	"github.com/guilt/hashfn/pkg/common"
)

func init() {
	common.AddHasher(checksumHasher(common.XXHASH, familyFast, 8, func() common.Checksum { return xxhash.New() }))
	common.AddHasher(checksumHasher(common.XXH3, familyFast, 8, func() common.Checksum { return xxh3.New() }))
	common.AddHasher(checksumHasher(common.CITYHASH, familyFast, 8, func() common.Checksum { return cityhash.New64() }))
}

