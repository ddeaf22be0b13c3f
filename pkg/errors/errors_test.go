package errors

import (
	sterrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", Usagef("bad flag %s", "--x"), 2},
		{"wrapped usage", fmt.Errorf("parsing: %w", ErrUsage), 2},
		{"input", fmt.Errorf("%w: no such file", ErrInput), 1},
		{"read", &HashError{Algorithm: "md5", Err: sterrors.New("eio")}, 1},
		{"other", sterrors.New("anything"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestUsagef(t *testing.T) {
	err := Usagef("unexpected argument '%s'", "b.txt")
	assert.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, "usage error: unexpected argument 'b.txt'", err.Error())
}

func TestHashError(t *testing.T) {
	cause := sterrors.New("device went away")
	err := error(&HashError{Algorithm: "sha256", Err: cause})

	assert.Equal(t, "sha256: device went away", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUsage)

	var he *HashError
	assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &he)
	assert.Equal(t, "sha256", he.Algorithm)
}
