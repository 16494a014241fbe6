package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/store"
)

const (
	defaultHousekeepingInterval = time.Hour
	housekeepingRunTimeout      = 30 * time.Second
)

// HousekeepingService purges expired admin sessions on a fixed interval.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewHousekeepingService returns a stopped service. A non-positive interval
// means hourly.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = defaultHousekeepingInterval
	}
	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		Now:      time.Now,
	}
}

// Start sweeps once immediately and then every Interval until Stop. Calling
// Start on a running service does nothing.
func (s *HousekeepingService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(ctx, s.done)

	s.Logger.Info("housekeeping started", "interval", s.Interval)
}

// Stop cancels the worker and waits for an in-flight sweep to return. It is
// safe to call on a service that was never started.
func (s *HousekeepingService) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		s.Cleanup(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Cleanup deletes sessions that expired before Now and returns the count.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, housekeepingRunTimeout)
	defer cancel()

	n, err := s.Store.Sessions().DeleteExpiredSessions(ctx, s.Now())
	if err != nil {
		if ctx.Err() == nil {
			s.Logger.Error("expired session sweep failed", "error", err)
		}
		return 0
	}

	if n > 0 {
		s.Logger.Info("expired sessions purged", "count", n)
	} else {
		s.Logger.Debug("no expired sessions")
	}
	return n
}
