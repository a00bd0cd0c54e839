// This file implements hot reloading of the dataset in development.
package jsonfile

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"superviseme/pkg/debounce"
)

// DatasetWatcher watches the dataset file and notifies a callback when it
// changes. Editors and pipeline writes produce bursts of fs events, so
// notifications are debounced: only the last event of a burst triggers a
// reload.
type DatasetWatcher struct {
	path     string
	onChange func()
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	debounce *debounce.Debouncer
	stopCh   chan struct{}
}

// NewDatasetWatcher starts watching the directory containing the dataset
// file. The directory, not the file: most writers replace the file via
// rename, which drops a file-level watch.
func NewDatasetWatcher(path string, onChange func(), logger *zap.Logger) (*DatasetWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &DatasetWatcher{
		path:     path,
		onChange: onChange,
		logger:   logger,
		watcher:  fsWatcher,
		debounce: debounce.New(500 * time.Millisecond),
		stopCh:   make(chan struct{}),
	}
	go w.watchLoop()

	logger.Info("Dataset hot reloading enabled", zap.String("path", path))
	return w, nil
}

// Stop terminates the watcher
func (w *DatasetWatcher) Stop() {
	close(w.stopCh)
	w.debounce.Stop()
	w.watcher.Close()
}

func (w *DatasetWatcher) watchLoop() {
	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isDatasetEvent(event) {
				continue
			}
			w.logger.Debug("Dataset file changed",
				zap.String("file", event.Name),
				zap.String("op", event.Op.String()),
			)
			w.debounce.Trigger(w.onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Dataset watcher error", zap.Error(err))
		}
	}
}

func (w *DatasetWatcher) isDatasetEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
