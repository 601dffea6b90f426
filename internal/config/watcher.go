package config

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the config file on change and hands the result to a
// callback. Only feature flags are expected to change at runtime; callers
// decide what to do with the rest.
type Watcher struct {
	path     string
	logger   *zap.Logger
	notifier *fsnotify.Watcher
	onChange func(*Config)
}

// NewWatcher creates a watcher for the given config file.
func NewWatcher(path string, logger *zap.Logger, onChange func(*Config)) (*Watcher, error) {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := notifier.Add(path); err != nil {
		notifier.Close()
		return nil, err
	}
	return &Watcher{path: path, logger: logger, notifier: notifier, onChange: onChange}, nil
}

// Start consumes file events until Close is called. Run it in a goroutine.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.notifier.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.notifier.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load()
	if err != nil {
		w.logger.Warn("config reload skipped", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("config reloaded", zap.String("path", w.path))
	w.onChange(cfg)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.notifier.Close()
}
