package common

import "io"

// LifecycleReader is a reader that reports every chunk it hands out to a FileLifecycle.
// It does not change what the wrapped reader returns, faults included.
type LifecycleReader struct {
	Reader    io.Reader
	Lifecycle FileLifecycle
}

// Read implements io.Reader.
func (lr *LifecycleReader) Read(p []byte) (n int, err error) {
	n, err = lr.Reader.Read(p)
	if n > 0 && lr.Lifecycle.OnChunk != nil {
		lr.Lifecycle.OnChunk(int64(n))
	}
	return n, err
}
