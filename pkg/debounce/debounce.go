// Package debounce coalesces bursts of calls that share a key so only the last one runs.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned to a caller whose call was replaced by a newer one for the same key.
var ErrSuperseded = errors.New("debounce: superseded by a newer call")

type call struct {
	cancel context.CancelCauseFunc
}

// Debouncer delays calls per key and cancels the older call whenever a new one arrives.
type Debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	pending map[string]*call
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay, pending: make(map[string]*call)}
}

// Delay returns the quiet period a call waits before running.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Do waits for the quiet period and then runs fn. A newer Do or Cancel for the same key
// aborts the wait, or cancels the context handed to fn if it is already running, and the
// older caller gets ErrSuperseded.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithCancelCause(ctx)
	current := &call{cancel: cancel}

	d.mu.Lock()
	if previous, ok := d.pending[key]; ok {
		previous.cancel(ErrSuperseded)
	}
	d.pending[key] = current
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		if d.pending[key] == current {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		cancel(nil)
	}()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-callCtx.Done():
		return context.Cause(callCtx)
	case <-timer.C:
	}

	err := fn(callCtx)
	if cause := context.Cause(callCtx); errors.Is(cause, ErrSuperseded) {
		return ErrSuperseded
	}
	return err
}

// Cancel aborts the pending call for key, if any.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if previous, ok := d.pending[key]; ok {
		previous.cancel(ErrSuperseded)
		delete(d.pending, key)
	}
}

// Pending reports how many keys currently have a call waiting or running.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
