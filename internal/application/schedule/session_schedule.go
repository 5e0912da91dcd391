package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

type SessionScheduler struct {
	cron           *cron.Cron
	useCase        dashboard.UseCase
	cronExpression string
	idle           time.Duration
}

func NewSessionScheduler(useCase dashboard.UseCase, cronExpression string, idle time.Duration) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), useCase: useCase, cronExpression: cronExpression, idle: idle}
}

// InitSessionScheduleTasks initializes the idle session sweep
func (scheduler *SessionScheduler) InitSessionScheduleTasks() {
	_, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.SweepIdleSessions)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

// Stop halts the scheduler and waits for a running sweep to finish
func (scheduler *SessionScheduler) Stop(ctx context.Context) {
	select {
	case <-scheduler.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (scheduler *SessionScheduler) SweepIdleSessions() {
	log.Debug(msg.GetMessage("session.cron.start"))

	removed, err := scheduler.useCase.Sweep(context.Background(), scheduler.idle)

	if err != nil {
		log.Error(msg.GetMessage("session.error.sweep-failed", err), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("session.cron.end", removed),
		zap.Int("removed", removed),
		zap.Duration("idle", scheduler.idle))
}
