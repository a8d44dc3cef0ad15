package config

import (
	"fmt"
	"path/filepath"

	"github.com/codefionn/calcpad/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	onLoad  func(*Config)
	done    chan struct{}
}

// Watch starts watching path and calls onLoad with each successfully
// reloaded configuration. The parent directory is watched so that editors
// replacing the file atomically are picked up too.
func Watch(path string, onLoad func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(path),
		onLoad:  onLoad,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				logger.Warn("config: reload of %s failed: %v", w.path, err)
				continue
			}
			logger.Info("config: reloaded %s", w.path)
			w.onLoad(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("config watcher error: %v", err)
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
