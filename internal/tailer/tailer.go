// Package tailer follows growing ngLog files line by line.
package tailer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/nxadm/tail"
)

// errBuffer is the buffer size for the error channel. A small buffer
// prevents error loss during brief moments when the consumer is busy
// processing lines.
const errBuffer = 16

// Config holds configuration for tailing. The file is always followed
// and reopened on truncation or recreation.
type Config struct {
	// FromStart reads from the beginning of the file instead of the end.
	FromStart bool

	// Poll uses polling instead of inotify (more compatible but less efficient).
	Poll bool
}

// Tailer wraps nxadm/tail with a channel API tied to a context.
type Tailer struct {
	t      *tail.Tail
	ctx    context.Context
	cancel context.CancelFunc
	lines  chan string
	errors chan error
	doneCh chan struct{}

	mu      sync.Mutex
	stopped bool
}

// New creates a Tailer for the specified file, which must exist and be
// a regular file. The provided context controls the tailer's lifecycle.
func New(ctx context.Context, path string, cfg Config) (*Tailer, error) {
	// tail.TailFile opens directories without complaint and only fails
	// on the first read; reject them up front.
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening tail: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("opening tail: %s is not a regular file", path)
	}

	whence := io.SeekEnd
	if cfg.FromStart {
		whence = io.SeekStart
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		Poll:      cfg.Poll,
		MustExist: true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: whence},
	})
	if err != nil {
		return nil, fmt.Errorf("opening tail: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	tl := &Tailer{
		t:      t,
		ctx:    ctx,
		cancel: cancel,
		lines:  make(chan string),
		errors: make(chan error, errBuffer),
		doneCh: make(chan struct{}),
	}
	go tl.run()
	return tl, nil
}

// Lines returns a channel that receives log lines.
func (t *Tailer) Lines() <-chan string {
	return t.lines
}

// Errors returns a channel that receives errors from tailing.
// Errors are dropped when the buffer is full.
func (t *Tailer) Errors() <-chan error {
	return t.errors
}

// Stop stops tailing and closes all channels.
// Safe to call multiple times.
func (t *Tailer) Stop() error {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return nil
	}
	t.stopped = true
	t.mu.Unlock()

	t.cancel()
	<-t.doneCh // Wait for run() to finish
	return t.t.Stop()
}

func (t *Tailer) run() {
	defer close(t.doneCh)
	defer close(t.lines)
	defer close(t.errors)

	for {
		select {
		case <-t.ctx.Done():
			return
		case line, ok := <-t.t.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				select {
				case t.errors <- fmt.Errorf("tail: %w", line.Err):
				case <-t.ctx.Done():
					return
				default:
					// Drop the error if the buffer is full
				}
				continue
			}
			select {
			case t.lines <- line.Text:
			case <-t.ctx.Done():
				return
			}
		}
	}
}
