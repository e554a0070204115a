package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrRemoteSource is returned when watching an http(s) source.
var ErrRemoteSource = errors.New("watching requires a local source")

// Watcher reports dataset names whose local files changed.
type Watcher struct {
	fs      *fsnotify.Watcher
	names   map[string]string // cleaned path -> dataset name
	changes chan string
	done    chan struct{}
	logger  *zap.Logger
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts watching the files behind names. Directories are watched
// rather than files so editors that replace files on save are still seen.
func (c *Client) Watch(logger *zap.Logger, names ...string) (*Watcher, error) {
	if c.Remote() {
		return nil, ErrRemoteSource
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fs:      fsw,
		names:   make(map[string]string, len(names)),
		changes: make(chan string, 8),
		done:    make(chan struct{}),
		logger:  logger,
	}

	dirs := make(map[string]bool)
	for _, name := range names {
		p := filepath.Clean(c.Locate(name))
		w.names[p] = name
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
		logger.Debug("watching directory", zap.String("dir", dir))
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes delivers the name of each dataset whose file changed. A pending
// notification absorbs further changes to any dataset until it is read.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher and closes the Changes channel.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
		close(w.changes)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			name, watched := w.names[filepath.Clean(event.Name)]
			if !watched {
				continue
			}
			w.logger.Debug("dataset file changed", zap.String("dataset", name), zap.String("op", event.Op.String()))
			select {
			case w.changes <- name:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}
