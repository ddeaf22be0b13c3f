// Package common provides the algorithm catalogue, hashing capability interfaces,
// the algorithm registry, the selector and output formatting shared by hashfn.
package common

import "strings"

// Algorithm represents a hash algorithm.
// Declaration order is the catalogue order, which is also the precedence used
// by Select when several algorithms are requested at once.
type Algorithm int

// Constants for hash algorithms.
const (
	BLAKE2B Algorithm = iota
	BLAKE2S
	MD5
	SHA1
	SHA256
	SHA512
	SHA3_256
	SHA3_512
	WHIRLPOOL
	RIPEMD160
	RIPEMD320
	GROESTL224
	GROESTL256
	GROESTL384
	GROESTL512
	ADLER32
	BSDSUM
	SYSVSUM
	CKSUM
	FNV32
	FNV32A
	FNV32Z
	FNV64
	FNV64A
	FNV64Z
	FLETCHER16
	CRC32
	CRC32C
	GOST94PRO
	GOST94S2015
	GOST94TEST
	MD4
	SHA224
	SHA384
	SHA512_224
	SHA512_256
	SHA3_224
	SHA3_384
	SHAKE128
	SHAKE256
	KANGAROOTWELVE
	BLAKE3
	SM3
	XXHASH
	XXH3
	CITYHASH

	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	BLAKE2B:        "blake2b",
	BLAKE2S:        "blake2s",
	MD5:            "md5",
	SHA1:           "sha1",
	SHA256:         "sha256",
	SHA512:         "sha512",
	SHA3_256:       "sha3_256",
	SHA3_512:       "sha3_512",
	WHIRLPOOL:      "whirlpool",
	RIPEMD160:      "ripemd160",
	RIPEMD320:      "ripemd320",
	GROESTL224:     "groestl224",
	GROESTL256:     "groestl256",
	GROESTL384:     "groestl384",
	GROESTL512:     "groestl512",
	ADLER32:        "adler32",
	BSDSUM:         "sum",
	SYSVSUM:        "sum_s",
	CKSUM:          "cksum",
	FNV32:          "fnv32",
	FNV32A:         "fnv32a",
	FNV32Z:         "fnv32z",
	FNV64:          "fnv64",
	FNV64A:         "fnv64a",
	FNV64Z:         "fnv64z",
	FLETCHER16:     "fletcher16",
	CRC32:          "crc32",
	CRC32C:         "crc32c",
	GOST94PRO:      "gost94pro",
	GOST94S2015:    "gost94s2015",
	GOST94TEST:     "gost94test",
	MD4:            "md4",
	SHA224:         "sha224",
	SHA384:         "sha384",
	SHA512_224:     "sha512_224",
	SHA512_256:     "sha512_256",
	SHA3_224:       "sha3_224",
	SHA3_384:       "sha3_384",
	SHAKE128:       "shake128",
	SHAKE256:       "shake256",
	KANGAROOTWELVE: "kangaroo12",
	BLAKE3:         "blake3",
	SM3:            "sm3",
	XXHASH:         "xxhash",
	XXH3:           "xxh3",
	CITYHASH:       "cityhash",
}

// Short flag names kept for compatibility with older command lines.
var algorithmAliases = map[Algorithm][]string{
	SHA256:   {"sha2"},
	SHA3_256: {"sha3"},
}

// String returns the canonical flag name of the algorithm.
func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return "unknown"
	}
	return algorithmNames[a]
}

// Aliases returns the alternative flag names of the algorithm, if any.
func (a Algorithm) Aliases() []string {
	return algorithmAliases[a]
}

// Valid reports whether a is part of the catalogue.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < numAlgorithms
}

// Algorithms returns every catalogued algorithm in precedence order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, 0, numAlgorithms)
	for a := Algorithm(0); a < numAlgorithms; a++ {
		all = append(all, a)
	}
	return all
}

// ParseAlgorithm resolves a flag name or alias to an Algorithm.
// Matching ignores case and treats '-' and '_' alike, so "SHA3-256" finds sha3_256.
func ParseAlgorithm(name string) (Algorithm, bool) {
	name = normalizeName(name)
	for a := Algorithm(0); a < numAlgorithms; a++ {
		if algorithmNames[a] == name {
			return a, true
		}
		for _, alias := range algorithmAliases[a] {
			if alias == name {
				return a, true
			}
		}
	}
	return 0, false
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
