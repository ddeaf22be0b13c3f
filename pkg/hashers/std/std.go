// Package std is the digest driver: it streams an input into any byte-finalizing hash.
package std

import (
	"fmt"
	"io"

	"github.com/guilt/hashfn/pkg/common"
)

// ComputeHash feeds the whole reader into a fresh digest from newDigest and
// returns the lowercase hex of the result. Digests accept chunks of any size,
// so the copy uses whatever fast path the reader and digest offer.
// A read fault abandons the computation and is returned.
func ComputeHash(reader io.Reader, newDigest func() common.Digest) (string, error) {
	h := newDigest()
	if h == nil {
		return "", fmt.Errorf("cannot create hash")
	}

	if _, err := io.Copy(h, reader); err != nil {
		return "", fmt.Errorf("hashing error: %w", err)
	}
	return common.FormatDigest(h.Sum(nil)), nil
}
