package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-sync/internal/logger"
	"github.com/MKhiriev/go-chat-sync/models"
)

const defaultBaselineInterval = time.Minute

// peerLister is the slice of ConversationStore the job needs.
type peerLister interface {
	ListPeers(ctx context.Context) (models.PeerList, error)
}

type baselineJob struct {
	lister   peerLister
	interval time.Duration
	logger   *logger.Logger

	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBaselineJob creates a job that calls lister.ListPeers on a ticker and
// whenever Trigger is called. If interval is zero or negative it defaults to
// one minute. The job is idle until Start is called.
func NewBaselineJob(lister peerLister, interval time.Duration, log *logger.Logger) BaselineJob {
	if interval <= 0 {
		interval = defaultBaselineInterval
	}
	return &baselineJob{
		lister:   lister,
		interval: interval,
		logger:   log,
		trigger:  make(chan struct{}, 1),
	}
}

// Start implements BaselineJob. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *baselineJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			case <-j.trigger:
			}
			j.refresh(jobCtx)
		}
	}()
}

// Trigger implements BaselineJob. Requests coalesce: triggering twice before
// the job wakes up causes a single refresh.
func (j *baselineJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements BaselineJob. Safe to call when the job is not running.
func (j *baselineJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *baselineJob) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := j.lister.ListPeers(ctx); err != nil {
		j.logger.Warn().Err(err).Str("func", "baselineJob.refresh").Msg("baseline refresh failed")
	}
}
