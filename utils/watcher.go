package utils

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// DefaultDebounce collapses the burst of events editors emit for a single save
const DefaultDebounce = 200 * time.Millisecond

// LoadPattern reads a pattern file and parses it into a universe
func LoadPattern(filename string, boundary model.Boundary) (*model.Universe, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to read file: %+v", filename)
	}

	u, err := model.Parse(string(data), boundary)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to parse file: %+v", filename)
	}
	return u, nil
}

// PatternWatcher reloads a pattern file whenever it changes on disk
type PatternWatcher struct {
	filename string
	boundary model.Boundary
	debounce time.Duration

	fsWatcher *fsnotify.Watcher
	updates   chan *model.Universe

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPatternWatcher creates a watcher for filename, Start must be called to begin watching
func NewPatternWatcher(filename string, boundary model.Boundary) (*PatternWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "[NewPatternWatcher] failed to create file system watcher")
	}

	return &PatternWatcher{
		filename:  filepath.Clean(filename),
		boundary:  boundary,
		debounce:  DefaultDebounce,
		fsWatcher: fsWatcher,
		updates:   make(chan *model.Universe, 1),
	}, nil
}

// Updates delivers a freshly parsed universe after each change to the file
func (w *PatternWatcher) Updates() <-chan *model.Universe {
	return w.updates
}

// Start watches the directory holding the file, so editors that replace the file are still seen
func (w *PatternWatcher) Start(ctx context.Context) error {
	if err := w.fsWatcher.Add(filepath.Dir(w.filename)); err != nil {
		return errors.Wrapf(err, "[Start] failed to watch pattern file: %+v", w.filename)
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.watchLoop(ctx)
	return nil
}

// Stop ends the watch loop and releases the file system watcher
func (w *PatternWatcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
	}
	err := w.fsWatcher.Close()
	w.wg.Wait()
	return err
}

func (w *PatternWatcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			reload = timer.C

		case <-reload:
			reload = nil
			u, err := LoadPattern(w.filename, w.boundary)
			if err != nil {
				log.Printf("Failed to reload pattern: %v", err)
				continue
			}
			w.publish(u)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Pattern watcher error: %v", err)
		}
	}
}

// publish keeps only the newest universe if the reader has fallen behind
func (w *PatternWatcher) publish(u *model.Universe) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- u
}
