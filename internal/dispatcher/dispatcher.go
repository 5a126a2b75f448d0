// Package dispatcher runs a single worker goroutine against a store.Store,
// serialising every request through one FIFO queue guarded by a mutex
// (spec §4.6). Callers never touch the store directly.
package dispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/cch137/kvdb/internal/command"
)

// idle back-off schedule (spec §4.6): back off begins after this much
// continuous idle time, grows by this increment per idle iteration, and
// never exceeds the cap.
const (
	idleTrigger   = 100 * time.Millisecond
	idleIncrement = time.Second / (5 * 60 * 1000)
	idleCap       = time.Second
)

type queueEntry struct {
	req   *command.Request
	reply *command.Reply
	done  chan struct{}
}

// Dispatcher owns the single worker goroutine and the FIFO request queue.
// All data-store structures are thread-confined to the worker (spec §5);
// the queue head/tail and each entry's done channel are the only
// cross-goroutine state.
type Dispatcher struct {
	ctx *command.Context

	mu    sync.Mutex
	queue []*queueEntry

	stop    chan struct{}
	stopped chan struct{}

	shutdownOnce sync.Once
}

// New starts the worker goroutine immediately and returns a Dispatcher
// ready to accept submissions.
func New(ctx *command.Context) *Dispatcher {
	d := &Dispatcher{
		ctx:     ctx,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	go d.run()

	return d
}

// Submit enqueues req and blocks until the worker has produced a reply, ctx
// is cancelled, or the dispatcher has shut down. Ordering guarantee:
// replies complete in the order their requests were enqueued (spec §4.6).
func (d *Dispatcher) Submit(ctx context.Context, req *command.Request) (*command.Reply, error) {
	entry := &queueEntry{req: req, done: make(chan struct{})}

	d.mu.Lock()
	d.queue = append(d.queue, entry)
	d.mu.Unlock()

	select {
	case <-entry.done:
		return entry.reply, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-d.stopped:
		// The worker may have already dequeued and completed entry before
		// exiting; prefer a real reply over a spurious shutdown error.
		select {
		case <-entry.done:
			return entry.reply, nil
		default:
			return nil, ErrShutdown
		}
	}
}

// Shutdown stops the worker after it finishes draining the current queue.
// Safe to call more than once; only the first call has effect.
func (d *Dispatcher) Shutdown() {
	d.shutdownOnce.Do(func() {
		close(d.stop)
	})
}

// Wait blocks until the worker goroutine has exited.
func (d *Dispatcher) Wait() {
	<-d.stopped
}

func (d *Dispatcher) run() {
	defer close(d.stopped)

	var (
		idleSince time.Time
		backoff   time.Duration
	)

	for {
		select {
		case <-d.stop:
			d.drain()
			return
		default:
		}

		d.ctx.Store.Maintenance()

		batch := d.takeAll()
		if len(batch) == 0 {
			if idleSince.IsZero() {
				idleSince = time.Now()
				continue
			}

			if time.Since(idleSince) < idleTrigger {
				continue
			}

			backoff += idleIncrement
			if backoff > idleCap {
				backoff = idleCap
			}

			select {
			case <-d.stop:
				d.drain()
				return
			case <-time.After(backoff):
			}

			continue
		}

		idleSince = time.Time{}
		backoff = 0

		for _, entry := range batch {
			entry.reply = command.Execute(d.ctx, entry.req)
			close(entry.done)
		}
	}
}

// drain runs every entry still queued at shutdown time so no caller blocks
// forever on Submit.
func (d *Dispatcher) drain() {
	for {
		batch := d.takeAll()
		if len(batch) == 0 {
			return
		}

		for _, entry := range batch {
			entry.reply = command.Execute(d.ctx, entry.req)
			close(entry.done)
		}
	}
}

func (d *Dispatcher) takeAll() []*queueEntry {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.queue) == 0 {
		return nil
	}

	batch := d.queue
	d.queue = nil

	return batch
}
