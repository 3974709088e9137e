// Package worker runs the background sweep that completes elapsed
// accepted visits.
package worker

import (
	"context"
	"log/slog"
	"time"

	"inmomarket/config"
	"inmomarket/internal/delivery"
	"inmomarket/internal/usecase"

	"go.uber.org/fx"
)

const defaultCompletionInterval = 15 * time.Minute

// completionSweeper periodically transitions ACCEPTED visits whose
// scheduled moment has passed into COMPLETED.
type completionSweeper struct {
	visitUC  usecase.VisitUsecase
	interval time.Duration
	logger   *slog.Logger
	stop     chan struct{}
}

// SweeperParams holds dependencies for the completion sweeper
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	VisitUC usecase.VisitUsecase
}

// NewCompletionSweeper creates the sweeper delivery.
func NewCompletionSweeper(params SweeperParams) (delivery.Delivery, error) {
	interval := defaultCompletionInterval
	if params.Cfg.Visits != nil && params.Cfg.Visits.CompletionInterval > 0 {
		interval = params.Cfg.Visits.CompletionInterval
	}

	sweeper := &completionSweeper{
		visitUC:  params.VisitUC,
		interval: interval,
		logger:   params.Logger,
		stop:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(sweeper.stop)

			return nil
		},
	})

	return sweeper, nil
}

// Serve runs the sweep loop until the context is cancelled or the
// application shuts down. One sweep runs immediately on start so a
// restart never delays overdue completions by a full interval.
func (s *completionSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting visit completion sweeper",
		slog.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			s.logger.Info("Stopping visit completion sweeper")

			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *completionSweeper) sweep(ctx context.Context) {
	completed, err := s.visitUC.CompleteElapsed(ctx, time.Now())
	if err != nil {
		s.logger.Error("Visit completion sweep failed",
			slog.Any("error", err),
		)

		return
	}

	if completed > 0 {
		s.logger.Info("Visit completion sweep finished",
			slog.Int("completed", completed),
		)
	}
}
