package cq_test

import (
	"context"
	"sync"
	"testing"

	"deedles.dev/fifo/cq"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func stopOnCleanup[T any](t *testing.T, q *cq.Queue[T]) {
	t.Helper()
	t.Cleanup(func() {
		q.Stop()
		<-q.Done()
	})
}

func TestQueue(t *testing.T) {
	var q cq.Queue[int]
	stopOnCleanup(t, &q)

	want := make([]int, 0, 100)
	for i := range 100 {
		require.NoError(t, q.Send(t.Context(), i))
		want = append(want, i)
	}
	require.Equal(t, 100, q.Len())

	got := make([]int, 0, 100)
	for range 100 {
		v, err := q.Recv(t.Context())
		require.NoError(t, err)
		got = append(got, v)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("receive order diff (-want +got):\n%s", diff)
	}
	require.Zero(t, q.Len())
}

func TestQueueChannels(t *testing.T) {
	var q cq.Queue[string]
	stopOnCleanup(t, &q)

	q.Add() <- "one"
	q.Add() <- "two"
	require.Equal(t, "one", <-q.Get())
	require.Equal(t, "two", <-q.Get())
}

func TestQueueConcurrent(t *testing.T) {
	const (
		producers = 4
		perProd   = 250
	)

	var q cq.Queue[[2]int]
	stopOnCleanup(t, &q)

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProd {
				if err := q.Send(t.Context(), [2]int{p, i}); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}

	next := make([]int, producers)
	for range producers * perProd {
		v, err := q.Recv(t.Context())
		require.NoError(t, err)
		require.Equal(t, next[v[0]], v[1], "out of order value from producer %v", v[0])
		next[v[0]]++
	}
	wg.Wait()

	for _, n := range next {
		require.Equal(t, perProd, n)
	}
}

func TestQueueStop(t *testing.T) {
	var q cq.Queue[int]
	require.NoError(t, q.Send(t.Context(), 1))

	q.Stop()
	q.Stop()
	<-q.Done()

	require.ErrorIs(t, q.Send(t.Context(), 2), cq.ErrStopped)
	_, err := q.Recv(t.Context())
	require.ErrorIs(t, err, cq.ErrStopped)
	require.Zero(t, q.Len())

	_, ok := <-q.Get()
	require.False(t, ok)
}

func TestQueueStopUnused(t *testing.T) {
	var q cq.Queue[int]
	q.Stop()
	<-q.Done()

	require.ErrorIs(t, q.Send(t.Context(), 1), cq.ErrStopped)
}

func TestQueueContext(t *testing.T) {
	var q cq.Queue[int]
	stopOnCleanup(t, &q)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := q.Recv(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, context.Canceled, errors.Cause(err))

	var values []int
	for v := range q.Values(ctx) {
		values = append(values, v)
	}
	require.Empty(t, values)
}

func TestQueueValues(t *testing.T) {
	var q cq.Queue[int]
	stopOnCleanup(t, &q)

	for i := range 5 {
		require.NoError(t, q.Send(t.Context(), i))
	}

	var got []int
	for v := range q.Values(t.Context()) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, got)
	require.Equal(t, 2, q.Len())
}

func TestQueueValuesStop(t *testing.T) {
	var q cq.Queue[int]
	require.NoError(t, q.Send(t.Context(), 1))

	done := make(chan []int)
	go func() {
		var got []int
		for v := range q.Values(context.Background()) {
			got = append(got, v)
			if v == 1 {
				q.Stop()
			}
		}
		done <- got
	}()

	require.Equal(t, []int{1}, <-done)
	<-q.Done()
}

func TestQueueLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	q := cq.Queue[int]{Logger: zap.New(core)}

	for i := range 3 {
		require.NoError(t, q.Send(t.Context(), i))
	}
	q.Stop()
	<-q.Done()

	entries := logs.FilterMessage("discarding queued values").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(3), entries[0].ContextMap()["count"])
	require.Equal(t, 1, logs.FilterMessage("queue stopped").Len())
}

func BenchmarkQueue(b *testing.B) {
	var q cq.Queue[int]
	defer func() {
		q.Stop()
		<-q.Done()
	}()

	ctx := context.Background()
	for i := range b.N {
		q.Send(ctx, i)
		q.Recv(ctx)
	}
}
