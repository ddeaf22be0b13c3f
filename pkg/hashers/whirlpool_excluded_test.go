//go:build no_whirlpool

package hashers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guilt/hashfn/pkg/common"
)

func TestExcludedFamilyReportsPlaceholder(t *testing.T) {
	h, err := common.GetHasher("whirlpool")
	require.NoError(t, err)
	assert.False(t, h.Available())

	got, err := h.Compute(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, "not compiled with whirlpool", got)
}
