package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type bookingDigester interface {
	DailyDigest(ctx context.Context) (int, error)
}

// Scheduler periodically pushes the day's schedule to the admin chat.
// It never mutates bookings: status changes only happen through explicit
// cancellation.
type Scheduler struct {
	bookingService bookingDigester
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingDigester,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	count, err := s.bookingService.DailyDigest(ctx)
	if err != nil {
		s.logger.Error("failed to send daily digest",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("daily digest sent",
		logger.Int("bookings", count),
	)
}
