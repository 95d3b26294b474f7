package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type growthProcessor interface {
	ProcessAll(ctx context.Context) bool
}

// Scheduler periodically triggers the growth sweep. It is the only
// timer in the system; the growth engine itself stays a pure function
// of "now".
type Scheduler struct {
	growth   growthProcessor
	interval time.Duration
	logger   logger.Logger
}

func New(
	growth growthProcessor,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		growth:   growth,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("growth scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("growth scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.growth.ProcessAll(ctx) {
		s.logger.Debug("growth sweep changed records")
	}
}
