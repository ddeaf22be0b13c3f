package common

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleReaderReportsChunks(t *testing.T) {
	var chunks []int64
	lr := &LifecycleReader{
		Reader:    iotest.HalfReader(strings.NewReader("abcdefgh")),
		Lifecycle: FileLifecycle{OnChunk: func(n int64) { chunks = append(chunks, n) }},
	}

	data, err := io.ReadAll(lr)
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh", string(data))

	var total int64
	for _, n := range chunks {
		assert.Positive(t, n)
		total += n
	}
	assert.EqualValues(t, 8, total)
}

func TestLifecycleReaderPassesFaults(t *testing.T) {
	boom := errors.New("boom")
	lr := &LifecycleReader{Reader: iotest.ErrReader(boom)}

	_, err := lr.Read(make([]byte, 4))
	assert.ErrorIs(t, err, boom)
}
