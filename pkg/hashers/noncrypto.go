//go:build !no_noncrypto

package hashers

import (
	"hash/adler32"
	"hash/fnv"

	"github.com/klauspost/crc32"

	"github.com/guilt/hashfn/pkg/bsdcksum"
	"github.com/guilt/hashfn/pkg/common"
	"github.com/guilt/hashfn/pkg/fletcher"
	"github.com/guilt/hashfn/pkg/fnvz"
	"github.com/guilt/hashfn/pkg/hashers/checksum"
)

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

func init() {
	hashers := []common.Hasher{
		checksumHasher(common.ADLER32, familyNonCrypto, adler32.Size, func() common.Checksum { return checksum.Lift32(adler32.New()) }),
		checksumHasher(common.BSDSUM, familyNonCrypto, bsdcksum.Size16, func() common.Checksum { return checksum.Lift32(bsdcksum.NewBSD()) }),
		checksumHasher(common.SYSVSUM, familyNonCrypto, bsdcksum.Size16, func() common.Checksum { return checksum.Lift32(bsdcksum.NewSysV()) }),
		checksumHasher(common.CKSUM, familyNonCrypto, bsdcksum.SizeCRC, func() common.Checksum { return checksum.Lift32(bsdcksum.NewPOSIX()) }),
		checksumHasher(common.FNV32, familyNonCrypto, 4, func() common.Checksum { return checksum.Lift32(fnv.New32()) }),
		checksumHasher(common.FNV32A, familyNonCrypto, 4, func() common.Checksum { return checksum.Lift32(fnv.New32a()) }),
		checksumHasher(common.FNV32Z, familyNonCrypto, 4, func() common.Checksum { return checksum.Lift32(fnvz.New32()) }),
		checksumHasher(common.FNV64, familyNonCrypto, 8, func() common.Checksum { return fnv.New64() }),
		checksumHasher(common.FNV64A, familyNonCrypto, 8, func() common.Checksum { return fnv.New64a() }),
		checksumHasher(common.FNV64Z, familyNonCrypto, 8, func() common.Checksum { return fnvz.New64() }),
		checksumHasher(common.FLETCHER16, familyNonCrypto, fletcher.Size16, func() common.Checksum { return checksum.Lift32(fletcher.New16()) }),
		checksumHasher(common.CRC32, familyNonCrypto, crc32.Size, func() common.Checksum { return checksum.Lift32(crc32.NewIEEE()) }),
		checksumHasher(common.CRC32C, familyNonCrypto, crc32.Size, func() common.Checksum { return checksum.Lift32(crc32.New(castagnoliTable)) }),
	}
	for _, h := range hashers {
		common.AddHasher(h)
	}
}
