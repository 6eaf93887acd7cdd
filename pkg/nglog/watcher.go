package nglog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nglog/nglog-go/internal/logfinder"
	"github.com/nglog/nglog-go/internal/parser"
	"github.com/nglog/nglog-go/internal/tailer"
)

// errBuffer is the buffer size for the watcher's error channel. Parse
// errors are sent non-blocking; the buffer absorbs bursts of bad lines
// until the consumer drains them.
const errBuffer = 16

// Watcher follows a growing local-variant ngLog file and emits parsed
// events. Unlike the whole-buffer Parse functions, which are fail-fast,
// the watcher forwards per-line parse failures on its error channel and
// keeps following; the caller decides whether to stop.
type Watcher struct {
	cfg    *watchConfig
	path   string // explicit file; empty when following a directory
	logDir string

	mu       sync.Mutex
	closed   bool
	cancel   context.CancelFunc // cancel func to stop the goroutine
	doneCh   chan struct{}      // signals when goroutine has exited
	watching bool               // true if Watch() has been called
}

// NewWatcher creates a watcher. Validates options and resolves the log
// directory or file. Does not start goroutines.
func NewWatcher(opts ...WatchOption) (*Watcher, error) {
	cfg := applyWatchOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	w := &Watcher{cfg: cfg}
	if cfg.path != "" {
		w.path = cfg.path
		return w, nil
	}

	logDir, err := logfinder.FindLogDir(cfg.logDir)
	if err != nil {
		return nil, err
	}
	w.logDir = logDir
	return w, nil
}

// Watch starts watching and returns channels. Starts internal
// goroutines here. Both channels close on ctx.Done() or fatal error.
// Watch can only be called once per Watcher instance.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, <-chan error) {
	w.mu.Lock()
	if w.closed || w.watching {
		w.mu.Unlock()
		// Return closed channels if already closed or watching
		eventCh := make(chan Event)
		errCh := make(chan error)
		close(eventCh)
		close(errCh)
		return eventCh, errCh
	}
	w.watching = true

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	eventCh := make(chan Event)
	errCh := make(chan error, errBuffer)

	go w.run(ctx, eventCh, errCh)

	return eventCh, errCh
}

// Close stops the watcher and releases resources.
// Safe to call multiple times.
// Blocks until the goroutine has exited.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true

	if w.cancel != nil {
		w.cancel()
	}
	doneCh := w.doneCh
	w.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
	return nil
}

func (w *Watcher) run(ctx context.Context, eventCh chan<- Event, errCh chan<- error) {
	defer close(w.doneCh) // Signal that goroutine has exited
	defer close(eventCh)
	defer close(errCh)

	logFile := w.path
	if logFile == "" {
		var err error
		logFile, err = logfinder.FindLatestLogFile(w.logDir)
		if err != nil {
			sendError(errCh, err)
			return
		}
	}
	w.debugf("following log file", "path", logFile)

	t, err := tailer.New(ctx, logFile, tailer.Config{FromStart: w.cfg.fromStart})
	if err != nil {
		sendError(errCh, fmt.Errorf("starting tailer: %w", err))
		return
	}
	defer func() { _ = t.Stop() }()

	pollInterval := w.cfg.pollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	rotationTicker := time.NewTicker(pollInterval)
	defer rotationTicker.Stop()

	currentFile := logFile

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-t.Lines():
			if !ok {
				return
			}
			w.processLine(ctx, line, eventCh, errCh)
		case err, ok := <-t.Errors():
			if !ok {
				return
			}
			sendError(errCh, err)
		case <-rotationTicker.C:
			if w.logDir == "" {
				continue // explicit file, no rotation
			}
			// Check whether the game started a newer log file
			newFile, err := logfinder.FindLatestLogFile(w.logDir)
			if err != nil {
				sendError(errCh, fmt.Errorf("checking for new log file: %w", err))
				continue
			}
			if newFile != currentFile {
				w.debugf("switching to new log file", "path", newFile)
				// Keep the old tailer running until the replacement is
				// up, so a failed switch leaves the watch alive for the
				// next tick.
				newTailer, err := tailer.New(ctx, newFile, tailer.Config{FromStart: true})
				if err != nil {
					sendError(errCh, fmt.Errorf("switching to new log file: %w", err))
					continue
				}
				_ = t.Stop()
				t = newTailer
				currentFile = newFile
			}
		}
	}
}

func (w *Watcher) processLine(ctx context.Context, line string, eventCh chan<- Event, errCh chan<- error) {
	ev, err := parser.ParseEvent(line)
	if err != nil {
		sendError(errCh, fmt.Errorf("parse error: %w", err))
		return
	}

	if !w.cfg.filter.Allows(ev) {
		return
	}
	w.debugf("parsed event", "id", ev.ID, "class", ev.Class)

	select {
	case eventCh <- ev:
	case <-ctx.Done():
	}
}

// debugf logs through the configured logger, if any.
func (w *Watcher) debugf(msg string, args ...any) {
	if w.cfg.logger != nil {
		w.cfg.logger.Debug(msg, args...)
	}
}

// sendError sends an error non-blocking.
func sendError(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
		// Drop error if channel is full
	}
}

// Watch is a convenience function that creates a watcher and starts
// watching. Returns an error immediately for initialization failures.
func Watch(ctx context.Context, opts ...WatchOption) (<-chan Event, <-chan error, error) {
	w, err := NewWatcher(opts...)
	if err != nil {
		return nil, nil, err
	}
	events, errs := w.Watch(ctx)
	return events, errs, nil
}
