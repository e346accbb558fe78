package walker

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"github.com/kivkovic/fnsh/internal/shared/errs"
)

// TotalSize sums the sizes of every file under dir and counts them.
// Unlike a recursive List it builds no entities, so it is the cheap
// way to answer "how big is this tree". The walk honors context
// cancellation between entries.
func TotalSize(ctx context.Context, dir string) (int64, int, error) {
	var total, files int64
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, dir, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}

		atomic.AddInt64(&total, info.Size())
		atomic.AddInt64(&files, 1)
		return nil
	})
	if err != nil {
		return 0, 0, errs.Classify("size", dir, err)
	}
	return atomic.LoadInt64(&total), int(atomic.LoadInt64(&files)), nil
}
