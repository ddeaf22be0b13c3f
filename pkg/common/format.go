package common

import (
	"encoding/hex"
	"strconv"
)

// FormatDigest renders a finalized digest as lowercase hex, two digits per byte.
func FormatDigest(sum []byte) string {
	return hex.EncodeToString(sum)
}

// FormatChecksum renders a finalized checksum as lowercase hex without zero padding.
func FormatChecksum(sum uint64) string {
	return strconv.FormatUint(sum, 16)
}
