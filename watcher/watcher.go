package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"iconsmith/icons"
)

// Generator regenerates the configured icon sets. Satisfied by *icons.Generator.
type Generator interface {
	Generate() (*icons.Result, error)
}

// Outcome reports one regeneration attempt.
type Outcome struct {
	Result *icons.Result
	Err    error
}

// Watcher monitors the source image and regenerates icons when it changes
type Watcher struct {
	source   string
	gen      Generator
	watcher  *fsnotify.Watcher
	outcomes chan Outcome

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

const debounceDelay = 500 * time.Millisecond

// New creates a watcher for the given source image
func New(source string, gen Generator) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		source:   filepath.Clean(source),
		gen:      gen,
		watcher:  fsWatcher,
		outcomes: make(chan Outcome, 16),
	}, nil
}

// Start begins monitoring the source image's directory
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.source)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.Printf("Watching folder: %s", dir)

	go w.processEvents()

	return nil
}

// processEvents handles fsnotify events for the source image
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only the source image matters; editors touch plenty of
			// temp files in the same directory.
			if filepath.Clean(event.Name) != w.source {
				continue
			}

			switch {
			case event.Op&fsnotify.Remove == fsnotify.Remove:
				log.Printf("Source image removed: %s", event.Name)
				continue
			case event.Op&fsnotify.Create == fsnotify.Create:
			case event.Op&fsnotify.Write == fsnotify.Write:
			default:
				continue
			}

			// Debounce: editors fire several write events per save
			w.resetDebounce()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) resetDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.regenerate)
}

// regenerate reruns the generator and publishes the outcome. Errors are
// logged, not fatal: the watch loop keeps running.
func (w *Watcher) regenerate() {
	log.Printf("Source image changed, regenerating: %s", w.source)

	result, err := w.gen.Generate()
	if err != nil {
		log.Printf("Regeneration failed: %v", err)
	}

	// Stop closes outcomes; publishing must not race past it.
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.outcomes <- Outcome{Result: result, Err: err}:
	default:
		// Nobody is reading; drop rather than block the timer goroutine.
	}
}

// Outcomes returns the channel of regeneration results
func (w *Watcher) Outcomes() <-chan Outcome {
	return w.outcomes
}

// Stop stops the watcher and closes the outcomes channel. A pending
// debounced regeneration is dropped.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		if w.timer != nil {
			w.timer.Stop()
		}
		close(w.outcomes)
	}
	w.mu.Unlock()

	return w.watcher.Close()
}
