package engine

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lumen-gfx/lumen/engine/core"
)

// ConfigWatcher reloads the config file when it changes on disk and hands
// fresh copies to the engine loop over a channel. Only the clear color is
// applied live; window size and device options need a restart.
type ConfigWatcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	changes  chan *Config
	done     chan struct{}
}

func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file. Editors replace files on save
	// and a file watch dies with the old inode.
	dir := filepath.Dir(path)
	if err := fsWatch.Add(dir); err != nil {
		fsWatch.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:     path,
		fsnotify: fsWatch,
		changes:  make(chan *Config, 1),
		done:     make(chan struct{}),
	}
	go cw.start()
	return cw, nil
}

// Changes delivers reloaded configs. The channel holds at most the latest
// one; stale intermediate saves are dropped.
func (cw *ConfigWatcher) Changes() <-chan *Config {
	return cw.changes
}

func (cw *ConfigWatcher) Shutdown() {
	close(cw.done)
}

func (cw *ConfigWatcher) start() {
	for {
		select {
		case e := <-cw.fsnotify.Events:
			if filepath.Clean(e.Name) != filepath.Clean(cw.path) {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			config, err := LoadConfig(cw.path)
			if err != nil {
				core.LogWarn("config reload failed: %s", err)
				continue
			}
			// Replace any undelivered config with the newest one.
			select {
			case <-cw.changes:
			default:
			}
			cw.changes <- config

		case e := <-cw.fsnotify.Errors:
			core.LogError(e.Error())

		case <-cw.done:
			cw.fsnotify.Close()
			return
		}
	}
}
