// Package scheduler runs the background loops: expired OAuth state sweeping
// and the periodic token refresh batch.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"vaultd/config"
	"vaultd/internal/delivery"
	"vaultd/internal/domain/service"
	"vaultd/internal/usecase"

	"go.uber.org/fx"
)

type scheduler struct {
	cfg       *config.Config
	logger    *slog.Logger
	states    service.StateStore
	refreshUC usecase.RefreshUsecase
	done      chan struct{}
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	States    service.StateStore
	RefreshUC usecase.RefreshUsecase
}

// NewScheduler is the constructor for the background scheduler.
func NewScheduler(params SchedulerParams) delivery.Delivery {
	s := &scheduler{
		cfg:       params.Cfg,
		logger:    params.Logger,
		states:    params.States,
		refreshUC: params.RefreshUC,
		done:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(s.done)

			return nil
		},
	})

	return s
}

// Serve runs the ticker loops until shutdown. A panic or error in one batch
// never stops the loop; the next tick simply runs again.
func (s *scheduler) Serve(ctx context.Context) error {
	sweepTicker := time.NewTicker(s.cfg.OAuth.SweepInterval)
	defer sweepTicker.Stop()

	var refreshTick <-chan time.Time
	if s.cfg.Refresh.Enabled {
		refreshTicker := time.NewTicker(s.cfg.Refresh.Interval)
		defer refreshTicker.Stop()
		refreshTick = refreshTicker.C

		s.logger.Info("Refresh scheduler enabled",
			slog.Duration("interval", s.cfg.Refresh.Interval),
			slog.Duration("window", s.cfg.Refresh.Window),
		)
	} else {
		s.logger.Info("Refresh scheduler disabled")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-sweepTicker.C:
			if removed := s.states.Sweep(time.Now()); removed > 0 {
				s.logger.Debug("Swept expired OAuth states", slog.Int("removed", removed))
			}
		case <-refreshTick:
			s.runRefreshBatch(ctx)
		}
	}
}

func (s *scheduler) runRefreshBatch(ctx context.Context) {
	report, err := s.refreshUC.RefreshDueConnections(ctx)
	if err != nil {
		s.logger.Error("Refresh batch failed", slog.Any("error", err))

		return
	}

	if report.Processed == 0 {
		return
	}

	failed := 0
	for _, result := range report.Results {
		if result.Status == usecase.RefreshStatusError {
			failed++
		}
	}

	s.logger.Info("Refresh batch completed",
		slog.Int("processed", report.Processed),
		slog.Int("failed", failed),
	)
}
