package common

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withHashers replaces the registry for the duration of a test.
func withHashers(t *testing.T, algos ...Algorithm) {
	t.Helper()
	saved := hashers
	hashers = map[Algorithm]Hasher{}
	t.Cleanup(func() { hashers = saved })
	for _, algo := range algos {
		name := algo.String()
		AddHasher(Hasher{
			Algo: algo,
			Kind: KindDigest,
			Compute: func(io.Reader) (string, error) {
				return name, nil
			},
		})
	}
}

func activeSet(algos ...Algorithm) func(Algorithm) bool {
	set := map[Algorithm]bool{}
	for _, a := range algos {
		set[a] = true
	}
	return func(a Algorithm) bool { return set[a] }
}

func TestSelectSingle(t *testing.T) {
	withHashers(t, MD5, SHA256, CRC32)

	sel, err := Select(activeSet(CRC32), SHA256, true)
	require.NoError(t, err)
	assert.Equal(t, CRC32, sel.Hasher.Algo)
	assert.Equal(t, "crc32", sel.Hasher.Name)
	assert.False(t, sel.Defaulted)
	assert.False(t, sel.None)
	assert.Empty(t, sel.Ignored)
}

func TestSelectPrecedenceIsCatalogueOrder(t *testing.T) {
	withHashers(t, MD5, SHA256, CRC32)

	for i := 0; i < 10; i++ {
		sel, err := Select(activeSet(CRC32, SHA256, MD5), SHA256, true)
		require.NoError(t, err)
		assert.Equal(t, MD5, sel.Hasher.Algo)
		assert.Equal(t, []Algorithm{SHA256, CRC32}, sel.Ignored)
	}
}

func TestSelectDefault(t *testing.T) {
	withHashers(t, MD5, SHA256)

	sel, err := Select(activeSet(), GetDefaultHashAlgorithm(), true)
	require.NoError(t, err)
	assert.True(t, sel.Defaulted)
	assert.Equal(t, SHA256, sel.Hasher.Algo)
	assert.Equal(t, "", sel.Text())
}

func TestSelectCustomFallback(t *testing.T) {
	withHashers(t, MD5, SHA256)

	sel, err := Select(activeSet(), MD5, true)
	require.NoError(t, err)
	assert.Equal(t, MD5, sel.Hasher.Algo)
}

func TestSelectSuppressedDefault(t *testing.T) {
	withHashers(t, SHA256)

	sel, err := Select(activeSet(), SHA256, false)
	require.NoError(t, err)
	assert.True(t, sel.None)
	assert.Equal(t, NoAlgorithmSelected, sel.Text())
	assert.Equal(t, "no algorithm selected", sel.Text())
}

func TestSelectSuppressedDefaultStillHonoursFlags(t *testing.T) {
	withHashers(t, SHA256, MD5)

	sel, err := Select(activeSet(MD5), SHA256, false)
	require.NoError(t, err)
	assert.False(t, sel.None)
	assert.Equal(t, MD5, sel.Hasher.Algo)
}

func TestSelectUnregistered(t *testing.T) {
	withHashers(t)

	_, err := Select(activeSet(MD5), SHA256, true)
	assert.Error(t, err)

	_, err = Select(activeSet(), SHA256, true)
	assert.Error(t, err)
}

func TestRegistryLookup(t *testing.T) {
	withHashers(t, CRC32, MD5, SHA256)

	h, err := GetHasher("sha2")
	require.NoError(t, err)
	assert.Equal(t, SHA256, h.Algo)

	_, err = GetHasher("nope")
	assert.Error(t, err)

	assert.Equal(t, []string{"md5", "sha256", "crc32"}, GetAllHasherNames())
}

func TestAddHasherRejectsInvalidAlgorithm(t *testing.T) {
	withHashers(t)
	assert.Panics(t, func() { AddHasher(Hasher{Algo: numAlgorithms}) })
}

func TestHasherAvailability(t *testing.T) {
	assert.False(t, Hasher{Kind: KindUnavailable}.Available())
	assert.True(t, Hasher{Kind: KindDigest}.Available())
	assert.True(t, Hasher{Kind: KindChecksum}.Available())
	assert.Equal(t, "checksum", KindChecksum.String())
	assert.Equal(t, "unavailable", KindUnavailable.String())
}
