package file

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects a decoder applied to the input before hashing.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

// Compressions lists the accepted --decompress values.
var Compressions = []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4}

// ParseCompression parses a --decompress value. The empty string means none.
func ParseCompression(s string) (Compression, error) {
	if s == "" {
		return CompressionNone, nil
	}
	for _, c := range Compressions {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported compression: %s", s)
}

// Decompress wraps rc so that reads return decoded content. The decoder is
// created on the first Read, so a corrupt header surfaces as a read fault of
// the stream rather than as an open error. Closing the result closes rc.
func Decompress(rc io.ReadCloser, c Compression) io.ReadCloser {
	switch c {
	case CompressionGzip:
		return &lazyReader{src: rc, open: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		}}
	case CompressionZstd:
		return &lazyReader{src: rc, open: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		}}
	case CompressionLZ4:
		return &lazyReader{src: rc, open: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		}}
	default:
		return rc
	}
}

type lazyReader struct {
	src  io.ReadCloser
	open func(io.Reader) (io.ReadCloser, error)
	dec  io.ReadCloser
	err  error
}

func (l *lazyReader) Read(p []byte) (int, error) {
	if l.dec == nil && l.err == nil {
		l.dec, l.err = l.open(l.src)
		if l.err != nil {
			l.err = fmt.Errorf("decompressing input: %w", l.err)
		}
	}
	if l.err != nil {
		return 0, l.err
	}
	return l.dec.Read(p)
}

func (l *lazyReader) Close() error {
	if l.dec != nil {
		l.dec.Close()
	}
	return l.src.Close()
}
