// Package lifecycle reports hashing progress.
package lifecycle

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/guilt/hashfn/pkg/common"
)

// MakeDefaultLifecycle returns a no-op lifecycle matching the progress function signature.
func MakeDefaultLifecycle(_ io.Writer, name string, size int64) common.FileLifecycle {
	return common.DefaultLifecycle
}

// MakeProgressBars returns a lifecycle drawing a byte progress bar on w.
// A size of -1 draws a spinner instead, for inputs of unknown length.
func MakeProgressBars(w io.Writer, name string, size int64) common.FileLifecycle {
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(fmt.Sprintf("Hashing %s", name)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSpinnerType(14),
	)
	return common.FileLifecycle{
		OnStart: func(size int64) {},
		OnChunk: func(bytes int64) {
			bar.Add64(bytes)
		},
		OnEnd: func() {
			bar.Finish()
			bar.Close()
		},
	}
}

// Wrap attaches lc to reader and fires OnStart.
// The caller must invoke lc.OnEnd once hashing has finished.
func Wrap(reader io.Reader, lc common.FileLifecycle, size int64) io.Reader {
	if lc.OnStart != nil {
		lc.OnStart(size)
	}
	return &common.LifecycleReader{Reader: reader, Lifecycle: lc}
}
