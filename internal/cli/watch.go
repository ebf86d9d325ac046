package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce batches the bursts of events editors produce on save.
const watchDebounce = 250 * time.Millisecond

// watchFiles calls rebuild after any change to the given files or to the
// contents of the given directories, until ctx is cancelled. Paths that do
// not exist are skipped. Parent directories are watched rather than files,
// so editors that save by rename keep triggering rebuilds.
func watchFiles(ctx context.Context, paths []string, logger *log.Logger, rebuild func(context.Context)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	files := map[string]bool{}
	var dirs []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		switch {
		case err != nil:
			logger.Debug("watch: skipping", "path", p, "err", err)
			continue
		case info.IsDir():
			dirs = append(dirs, abs)
			err = w.Add(abs)
		default:
			files[abs] = true
			err = w.Add(filepath.Dir(abs))
		}
		if err != nil {
			return err
		}
	}

	relevant := func(name string) bool {
		abs, err := filepath.Abs(name)
		if err != nil {
			return false
		}
		if files[abs] {
			return true
		}
		for _, d := range dirs {
			if filepath.Dir(abs) == d && !strings.HasPrefix(filepath.Base(abs), ".") {
				return true
			}
		}
		return false
	}

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod || !relevant(ev.Name) {
				continue
			}
			logger.Debug("watch", "op", ev.Op.String(), "path", ev.Name)
			timer.Reset(watchDebounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch", "err", err)

		case <-timer.C:
			rebuild(ctx)
		}
	}
}
