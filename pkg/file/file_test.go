package file

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/guilt/hashfn/pkg/errors"
	"github.com/guilt/hashfn/pkg/log"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		wantErr bool
	}{
		{"path", Source{Path: "input.bin"}, false},
		{"stdin", Source{Stdin: true}, false},
		{"both", Source{Path: "input.bin", Stdin: true}, true},
		{"neither", Source{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.source.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, herrors.ErrUsage)
			assert.Equal(t, 2, herrors.ExitCode(err))
		})
	}
}

func TestOpenStdin(t *testing.T) {
	rc, err := Open(Source{Stdin: true}, strings.NewReader("from stdin"))
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))
}

func TestSetLogger(t *testing.T) {
	t.Setenv("HASHFN_DEBUG", "1")
	var buf bytes.Buffer
	SetLogger(log.NewLoggerTo(&buf))
	t.Cleanup(func() { SetLogger(log.NewLogger()) })

	rc, err := Open(Source{Stdin: true}, strings.NewReader(""))
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Contains(t, buf.String(), "Reading from stdin")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o600))

	rc, err := Open(Source{Path: path}, nil)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "from file", string(data))
	assert.EqualValues(t, len("from file"), Size(Source{Path: path}))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(Source{Path: filepath.Join(t.TempDir(), "missing")}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, herrors.ErrInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, herrors.ExitCode(err))
}

func TestOpenRejectsBoth(t *testing.T) {
	_, err := Open(Source{Path: "x", Stdin: true}, strings.NewReader(""))
	assert.ErrorIs(t, err, herrors.ErrUsage)
}

func TestSizeUnknown(t *testing.T) {
	assert.EqualValues(t, -1, Size(Source{Stdin: true}))
	assert.EqualValues(t, -1, Size(Source{Path: t.TempDir()}))
	assert.EqualValues(t, -1, Size(Source{Path: filepath.Join(t.TempDir(), "missing")}))
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "<stdin>", Source{Stdin: true}.String())
	assert.Equal(t, "a.txt", Source{Path: "a.txt"}.String())
}
