package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// HousekeepingService periodically purges revocation entries whose tokens
// have expired, bounding the registry to the tokens that could still be
// presented.
type HousekeepingService struct {
	Revocations *RevocationRegistry
	Logger      *slog.Logger
	Interval    time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	started   bool
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to one hour.
func NewHousekeepingService(revocations *RevocationRegistry, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Revocations: revocations,
		Logger:      logger,
		Interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	s.startOnce.Do(func() {
		s.started = true
		go s.run()
		s.Logger.Info("housekeeping service started", "interval", s.Interval)
	})
}

// Stop blocks until any in-progress purge has finished. It is a no-op when
// the worker was never started and safe to call more than once.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		s.startOnce.Do(func() {}) // a later Start must not launch the worker
		close(s.stopCh)
		if s.started {
			<-s.doneCh
		}
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single purge and reports how many entries were dropped.
func (s *HousekeepingService) RunOnce(ctx context.Context) int64 {
	n, err := s.Revocations.Purge(ctx)
	if err != nil {
		s.Logger.Error("failed to purge revoked tokens", "error", err)
		return 0
	}
	s.Logger.Debug("purged revoked tokens", "deleted", n)
	return n
}
