// Package file selects and opens the input stream to hash.
package file

import (
	"fmt"
	"io"
	"os"

	herrors "github.com/guilt/hashfn/pkg/errors"
	"github.com/guilt/hashfn/pkg/log"
)

var logger = log.NewLogger()

// SetLogger directs the package's log output to l.
func SetLogger(l *log.Logger) {
	logger = l
}

// Source names the input: a file path or standard input, never both.
type Source struct {
	Path  string
	Stdin bool
}

// Validate checks that exactly one of Path and Stdin is set.
func (s Source) Validate() error {
	switch {
	case s.Stdin && s.Path != "":
		return herrors.Usagef("the argument '--stdin' cannot be used with '%s'", s.Path)
	case !s.Stdin && s.Path == "":
		return herrors.Usagef("an INPUT file or --stdin is required")
	}
	return nil
}

// String returns a name for the source suitable for logs and progress bars.
func (s Source) String() string {
	if s.Stdin {
		return "<stdin>"
	}
	return s.Path
}

// Open validates s and opens it read-only. Standard input is taken from stdin
// and is not closed by the returned ReadCloser.
func Open(s Source, stdin io.Reader) (io.ReadCloser, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Stdin {
		logger.Debugf("Reading from stdin")
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", herrors.ErrInput, err)
	}
	logger.Debugf("Opened input: file=%s", s.Path)
	return f, nil
}

// Size returns the byte size of a regular file source, or -1 when unknown.
func Size(s Source) int64 {
	if s.Stdin {
		return -1
	}
	info, err := os.Stat(s.Path)
	if err != nil || !info.Mode().IsRegular() {
		return -1
	}
	return info.Size()
}
