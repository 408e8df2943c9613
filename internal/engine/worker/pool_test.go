package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSingleWorkerRunsInOrder(t *testing.T) {
	p := New("order", 1, WithLogger(zaptest.NewLogger(t)))

	var (
		mu  sync.Mutex
		got []int
	)
	for i := range 100 {
		require.NoError(t, p.Submit(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}))
	}
	require.NoError(t, p.Stop())

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestStopDrainsQueuedJobs(t *testing.T) {
	p := New("drain", 2)

	release := make(chan struct{})
	var ran atomic.Int32
	for range 20 {
		require.NoError(t, p.Submit(func() {
			<-release
			ran.Add(1)
		}))
	}
	assert.NotZero(t, p.Pending())

	close(release)
	require.NoError(t, p.Stop())

	assert.Equal(t, int32(20), ran.Load())
	assert.Equal(t, uint64(20), p.Completed())
	assert.Zero(t, p.Pending())
}

func TestSubmitAfterStop(t *testing.T) {
	p := New("closed", 1)
	require.NoError(t, p.Stop())
	assert.True(t, p.Stopped())

	ran := false
	err := p.Submit(func() { ran = true })
	assert.ErrorIs(t, err, ErrStopped)
	assert.False(t, ran)

	assert.NoError(t, p.Stop(), "second Stop is a no-op")
}

func TestPanicDoesNotKillWorker(t *testing.T) {
	p := New("panics", 1, WithLogger(zaptest.NewLogger(t)))

	var after atomic.Bool
	require.NoError(t, p.Submit(func() { panic("boom") }))
	require.NoError(t, p.Submit(func() { after.Store(true) }))

	err := p.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 jobs panicked")
	assert.True(t, after.Load(), "job after a panic must still run")
}

func TestZeroWorkersClamped(t *testing.T) {
	p := New("clamp", 0)
	done := make(chan struct{})
	require.NoError(t, p.Submit(func() { close(done) }))
	<-done
	require.NoError(t, p.Stop())
	assert.Equal(t, "clamp", p.Name())
}
