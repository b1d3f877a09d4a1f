package autoorder

import (
	"context"

	"github.com/and161185/canteen/internal/localtime"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler drives the engine once per minute for the life of the process.
// Minute alignment follows the canteen's fixed local offset, not the host
// timezone. Missed ticks are not caught up.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	logger *zap.SugaredLogger
}

func NewScheduler(engine *Engine, logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(localtime.Zone)),
		engine: engine,
		logger: logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc("* * * * *", func() {
		if _, err := s.engine.Run(ctx); err != nil {
			s.logger.Errorf("auto-order batch pass: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("auto-order scheduler started")
	return nil
}

// Stop halts the timer and waits for an in-flight pass to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("auto-order scheduler stopped")
}
