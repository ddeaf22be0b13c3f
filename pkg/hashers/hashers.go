// Package hashers fills the algorithm registry. Blank-import it to make every
// compiled-in family available through common.GetHasher.
//
// Each family lives in its own file and can be left out of a build with the
// matching tag, e.g. -tags no_whirlpool,no_fast. A family that is left out
// still registers its algorithms, which then report "not compiled with <family>".
package hashers

import (
	"io"

	"github.com/guilt/hashfn/pkg/common"
	"github.com/guilt/hashfn/pkg/hashers/checksum"
	"github.com/guilt/hashfn/pkg/hashers/std"
)

// Family names, as reported in placeholders.
const (
	familyBlake2         = "blake2"
	familyMD5            = "md-5"
	familyMD4            = "md4"
	familySHA1           = "sha-1"
	familySHA2           = "sha2"
	familySHA3           = "sha3"
	familyKangarooTwelve = "kangarootwelve"
	familyBlake3         = "blake3"
	familySM3            = "sm3"
	familyWhirlpool      = "whirlpool"
	familyRIPEMD160      = "ripemd160"
	familyRIPEMD320      = "ripemd320"
	familyGroestl        = "groestl"
	familyGOST94         = "gost94"
	familyNonCrypto      = "non-crypto"
	familyFast           = "fast"
)

func digestHasher(algo common.Algorithm, family string, size int, newDigest func() common.Digest) common.Hasher {
	return common.Hasher{
		Algo:   algo,
		Name:   algo.String(),
		Family: family,
		Kind:   common.KindDigest,
		Size:   size,
		Compute: func(reader io.Reader) (string, error) {
			return std.ComputeHash(reader, newDigest)
		},
	}
}

func checksumHasher(algo common.Algorithm, family string, size int, newChecksum func() common.Checksum) common.Hasher {
	return common.Hasher{
		Algo:   algo,
		Name:   algo.String(),
		Family: family,
		Kind:   common.KindChecksum,
		Size:   size,
		Compute: func(reader io.Reader) (string, error) {
			return checksum.ComputeChecksum(reader, newChecksum), nil
		},
	}
}

// unavailableHasher never touches its input.
func unavailableHasher(algo common.Algorithm, family string) common.Hasher {
	placeholder := common.NotCompiledWith(family)
	return common.Hasher{
		Algo:        algo,
		Name:        algo.String(),
		Family:      family,
		Kind:        common.KindUnavailable,
		Placeholder: placeholder,
		Compute: func(_ io.Reader) (string, error) {
			return placeholder, nil
		},
	}
}

func registerUnavailable(family string, algos ...common.Algorithm) {
	for _, algo := range algos {
		common.AddHasher(unavailableHasher(algo, family))
	}
}
