// Package cq implements a concurrent FIFO queue.
//
// A [Queue] owns a [fifo.Queue] from a single goroutine and exposes it
// through channels, so it can be shared freely between goroutines
// without any additional locking.
package cq

import (
	"context"
	"runtime"
	"sync"

	"deedles.dev/fifo"
	"deedles.dev/fifo/internal/stopper"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrStopped is returned by operations on a Queue that has been
// stopped.
var ErrStopped = errors.New("queue is stopped")

// A Queue concurrently collects values and returns them in FIFO
// order. A zero value Queue is ready to use.
//
// A Queue is initialized by calling any of its methods. Its fields
// must be set before then and must not be changed afterwards.
//
// A Queue is stopped when it is garbage collected, but a Queue that
// is no longer needed should be stopped explicitly with
// [Queue.Stop].
type Queue[T any] struct {
	// Logger receives debug messages about the Queue's lifecycle. If
	// it is nil, nothing is logged.
	Logger *zap.Logger

	start sync.Once
	stop  *stopper.Stopper
	done  chan struct{}

	add  chan T
	get  chan T
	size chan int
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.stop = new(stopper.Stopper)
		q.done = make(chan struct{})
		q.add = make(chan T)
		q.get = make(chan T)
		q.size = make(chan int)

		log := q.Logger
		if log == nil {
			log = zap.NewNop()
		}

		r := runner[T]{
			log:  log,
			stop: q.stop,
			done: q.done,
			add:  q.add,
			get:  q.get,
			size: q.size,
		}
		go r.run()

		runtime.AddCleanup(q, func(s *stopper.Stopper) { s.Stop() }, q.stop)
	})
}

// Stop stops the Queue. Any values still in the Queue are discarded.
// It is safe to call more than once.
func (q *Queue[T]) Stop() {
	q.init()
	q.stop.Stop()
}

// Done returns a channel that is closed once the Queue has been
// stopped and has finished shutting down.
func (q *Queue[T]) Done() <-chan struct{} {
	q.init()
	return q.done
}

// Add returns a channel that enqueues values sent to it. This channel
// must not be closed. Sends to it block forever once the Queue has
// been stopped, so prefer [Queue.Send] when that matters.
func (q *Queue[T]) Add() chan<- T {
	q.init()
	return q.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.init()
	return q.get
}

// Send adds v to the Queue. It returns [ErrStopped] if the Queue has
// been stopped, or the context's error if ctx is canceled first.
func (q *Queue[T]) Send(ctx context.Context, v T) error {
	q.init()
	if q.stop.Stopped() {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "send to queue")
	case <-q.stop.Done():
		return ErrStopped
	case q.add <- v:
		return nil
	}
}

// Recv removes the value at the head of the Queue and returns it,
// blocking until one is available. It returns [ErrStopped] if the
// Queue is stopped, or the context's error if ctx is canceled first.
func (q *Queue[T]) Recv(ctx context.Context) (v T, err error) {
	q.init()

	select {
	case <-ctx.Done():
		return v, errors.Wrap(ctx.Err(), "receive from queue")
	case v, ok := <-q.get:
		if !ok {
			return v, ErrStopped
		}
		return v, nil
	}
}

// Len returns the number of values waiting in the Queue. The result
// is only a snapshot and may be out of date as soon as it is
// returned. A stopped Queue has a length of zero.
func (q *Queue[T]) Len() int {
	q.init()

	select {
	case <-q.stop.Done():
		return 0
	case n := <-q.size:
		return n
	}
}

type runner[T any] struct {
	log  *zap.Logger
	stop *stopper.Stopper
	done chan struct{}

	add  chan T
	get  chan T
	size chan int
}

func (r runner[T]) run() {
	var s fifo.Queue[T]

	r.log.Debug("queue started")
	defer func() {
		close(r.get)
		if n := s.Size(); n > 0 {
			r.log.Debug("discarding queued values", zap.Int("count", n))
		}
		s.Clear()

		r.log.Debug("queue stopped")
		close(r.done)
	}()

	var get chan T
	for {
		head, _ := s.First()

		select {
		case <-r.stop.Done():
			return

		case v := <-r.add:
			s.Enqueue(v)
			get = r.get

		case get <- head:
			s.Dequeue()
			if s.IsEmpty() {
				get = nil
			}

		case r.size <- s.Size():
		}
	}
}
