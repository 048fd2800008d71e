package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a settings file when it changes on disk. Successful loads
// arrive on Settings, failed ones on Errors.
type Watcher struct {
	Settings chan Settings
	Errors   chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch follows path. The parent directory is watched so that editors which
// replace the file on save are picked up too.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		Settings: make(chan Settings, 1),
		Errors:   make(chan error, 1),
		path:     abs,
		watcher:  fw,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Settings)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	// reload once the file has been quiet for reloadDebounce
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			s, err := Load(w.path)
			if err != nil {
				w.offerErr(err)
				continue
			}
			w.offer(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.offerErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// offer replaces any settings the game has not picked up yet.
func (w *Watcher) offer(s Settings) {
	select {
	case <-w.Settings:
	default:
	}
	select {
	case w.Settings <- s:
	case <-w.closeCh:
	}
}

func (w *Watcher) offerErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
