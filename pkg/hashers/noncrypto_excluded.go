//go:build no_noncrypto

package hashers

import "github.com/guilt/hashfn/pkg/common"

func init() {
	registerUnavailable(familyNonCrypto,
		common.ADLER32, common.BSDSUM, common.SYSVSUM, common.CKSUM,
		common.FNV32, common.FNV32A, common.FNV32Z,
		common.FNV64, common.FNV64A, common.FNV64Z,
		common.FLETCHER16, common.CRC32, common.CRC32C,
	)
}
