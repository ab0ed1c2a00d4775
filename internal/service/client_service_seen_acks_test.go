package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeenAckWorker_MarksQueuedMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)

	var (
		mu    sync.Mutex
		acked []string
	)
	adapterMock.EXPECT().MarkSeen(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) error {
			mu.Lock()
			acked = append(acked, id)
			mu.Unlock()
			return nil
		}).Times(3)

	w := newSeenAckWorker(adapterMock, 8, time.Second, logger.Nop())
	w.Start(context.Background())
	defer w.Stop()

	for _, id := range []string{"m1", "m2", "m3"} {
		require.True(t, w.Enqueue(id))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(acked) == 3
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.ElementsMatch(t, []string{"m1", "m2", "m3"}, acked)
	mu.Unlock()
}

func TestSeenAckWorker_FailureIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)

	done := make(chan struct{})
	adapterMock.EXPECT().MarkSeen(gomock.Any(), "m1").DoAndReturn(
		func(context.Context, string) error {
			close(done)
			return errors.New("connection reset")
		}).Times(1)

	w := newSeenAckWorker(adapterMock, 8, time.Second, logger.Nop())
	w.Start(context.Background())

	require.True(t, w.Enqueue("m1"))
	<-done
	// даём шанс на (ошибочный) повтор
	time.Sleep(20 * time.Millisecond)
	w.Stop()
}

func TestSeenAckWorker_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)

	done := make(chan error, 1)
	adapterMock.EXPECT().MarkSeen(gomock.Any(), "slow").DoAndReturn(
		func(ctx context.Context, _ string) error {
			<-ctx.Done()
			done <- ctx.Err()
			return ctx.Err()
		})

	w := newSeenAckWorker(adapterMock, 8, 10*time.Millisecond, logger.Nop())
	w.Start(context.Background())
	defer w.Stop()

	require.True(t, w.Enqueue("slow"))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("ack was not cancelled by its timeout")
	}
}

func TestSeenAckWorker_EnqueueDropsWhenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)

	// не запущен: очередь только наполняется
	w := newSeenAckWorker(adapterMock, 2, time.Second, logger.Nop())

	assert.True(t, w.Enqueue("m1"))
	assert.True(t, w.Enqueue("m2"))
	assert.False(t, w.Enqueue("m3"))
}

func TestSeenAckWorker_Defaults(t *testing.T) {
	w := newSeenAckWorker(nil, 0, 0, logger.Nop())

	assert.Equal(t, defaultAckQueueSize, cap(w.queue))
	assert.Equal(t, defaultAckTimeout, w.timeout)
}

func TestSeenAckWorker_StopIsIdempotent(t *testing.T) {
	w := newSeenAckWorker(nil, 1, time.Second, logger.Nop())

	assert.NotPanics(t, func() {
		w.Stop()
		w.Start(context.Background())
		w.Stop()
		w.Stop()
	})
}
