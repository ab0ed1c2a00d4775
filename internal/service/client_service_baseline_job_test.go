// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyLister считает вызовы ListPeers
type spyLister struct {
	calls atomic.Int64
	err   error
}

func (s *spyLister) ListPeers(context.Context) (models.PeerList, error) {
	s.calls.Add(1)
	return models.PeerList{}, s.err
}

// ── NewBaselineJob ───────────────────────────────────────────────────────────

func TestNewBaselineJob_ReturnsInterface(t *testing.T) {
	job := NewBaselineJob(&spyLister{}, time.Second, logger.Nop())
	require.NotNil(t, job)

	var _ BaselineJob = job
}

func TestNewBaselineJob_DefaultInterval(t *testing.T) {
	job := NewBaselineJob(&spyLister{}, 0, logger.Nop()).(*baselineJob)
	assert.Equal(t, defaultBaselineInterval, job.interval)

	job = NewBaselineJob(&spyLister{}, -time.Second, logger.Nop()).(*baselineJob)
	assert.Equal(t, defaultBaselineInterval, job.interval)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestBaselineJob_Start_RefreshesOnTicker(t *testing.T) {
	spy := &spyLister{}
	job := NewBaselineJob(spy, 10*time.Millisecond, logger.Nop())

	// Интервал 10ms — за 55ms должно быть ~5 тиков
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "ListPeers должен быть вызван несколько раз, вызвано: %d", got)
}

func TestBaselineJob_Trigger_RefreshesImmediately(t *testing.T) {
	spy := &spyLister{}
	job := NewBaselineJob(spy, time.Hour, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	job.Trigger()
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestBaselineJob_Trigger_Coalesces(t *testing.T) {
	spy := &spyLister{}
	job := NewBaselineJob(spy, time.Hour, logger.Nop())

	// до Start триггеры копятся в буфере размером 1
	job.Trigger()
	job.Trigger()
	job.Trigger()

	job.Start(context.Background())
	require.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestBaselineJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyLister{}
	job := NewBaselineJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestBaselineJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewBaselineJob(&spyLister{}, time.Second, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestBaselineJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewBaselineJob(&spyLister{}, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestBaselineJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyLister{}
	job := NewBaselineJob(spy, 10*time.Millisecond, logger.Nop()).(*baselineJob)

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// повторный Start внутри вызывает Stop
	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestBaselineJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewBaselineJob(&spyLister{}, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestBaselineJob_ErrorDoesNotStopJob(t *testing.T) {
	spy := &spyLister{err: assert.AnError}
	job := NewBaselineJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "несмотря на ошибки, ListPeers продолжает вызываться: %d", got)
}
