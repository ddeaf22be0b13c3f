package hashers

import "github.com/guilt/hashfn/pkg/common"

// No Go implementation of these families is linked into hashfn, so they are
// always reported as not compiled in.
func init() {
	registerUnavailable(familyRIPEMD320, common.RIPEMD320)
	registerUnavailable(familyGroestl, common.GROESTL224, common.GROESTL256, common.GROESTL384, common.GROESTL512)
	registerUnavailable(familyGOST94, common.GOST94PRO, common.GOST94S2015, common.GOST94TEST)
}
