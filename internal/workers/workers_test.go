// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that counts its runs and blocks until its context is done.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	<-ctx.Done()
	return nil
}

// failingWorker returns err immediately.
type failingWorker struct {
	err error
}

func (f *failingWorker) Run(context.Context) error {
	return f.err
}

func runWithTimeout(t *testing.T, ws *Workers, ctx context.Context) error {
	t.Helper()

	errCh := make(chan error, 1)
	go func() { errCh <- ws.Run(ctx) }()

	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop in time")
		return nil
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		assert.Eventually(t, func() bool {
			return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
		}, time.Second, 5*time.Millisecond)
		cancel()
	}()

	require.NoError(t, runWithTimeout(t, ws, ctx))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should return immediately on empty workers list
	require.NoError(t, runWithTimeout(t, ws, context.Background()))
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	require.NoError(t, runWithTimeout(t, ws, context.Background()))
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &mockWorker{}
	ws := NewWorkers(blocking, &failingWorker{err: boom})

	err := runWithTimeout(t, ws, context.Background())

	require.ErrorIs(t, err, boom)
}

func TestWorkers_Add(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers()
	ws.Add(w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, runWithTimeout(t, ws, ctx))
	assert.Equal(t, int32(1), w.runCount.Load())
}
