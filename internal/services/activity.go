package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/joinboard/backend/internal/infrastructure/journal"
	"github.com/joinboard/backend/usecase"
)

// ActivityConfig controls journal retention.
type ActivityConfig struct {
	Retention     time.Duration
	PruneSchedule string
}

// ActivityLog records board mutations into the journal and prunes old entries
// on a schedule.
type ActivityLog struct {
	store  *journal.Store
	cron   *cron.Cron
	cfg    ActivityConfig
	logger *zap.Logger
}

func NewActivityLog(store *journal.Store, cfg ActivityConfig, logger *zap.Logger) *ActivityLog {
	if cfg.Retention <= 0 {
		cfg.Retention = 30 * 24 * time.Hour
	}
	if cfg.PruneSchedule == "" {
		cfg.PruneSchedule = "@hourly"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	log := &ActivityLog{
		store:  store,
		cfg:    cfg,
		logger: logger,
		cron:   cron.New(),
	}

	_, _ = log.cron.AddFunc(cfg.PruneSchedule, log.prune)

	return log
}

// Record implements usecase.ActivityRecorder.
func (l *ActivityLog) Record(_ context.Context, event usecase.ActivityEvent) error {
	if l == nil || l.store == nil {
		return nil
	}
	return l.store.Append(journal.Entry{
		ID:        uuid.NewString(),
		ActorID:   event.ActorID,
		Entity:    event.Entity,
		Action:    event.Action,
		EntityID:  event.EntityID,
		Timestamp: time.Now(),
	})
}

// Start launches the pruning scheduler.
func (l *ActivityLog) Start() {
	if l == nil || l.cron == nil {
		return
	}
	l.cron.Start()
	l.logger.Info("activity log started", zap.Duration("retention", l.cfg.Retention))
}

// Stop gracefully stops the scheduler.
func (l *ActivityLog) Stop(ctx context.Context) {
	if l == nil || l.cron == nil {
		return
	}
	stopCtx := l.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	l.logger.Info("activity log stopped")
}

func (l *ActivityLog) prune() {
	removed, err := l.store.Prune(time.Now().Add(-l.cfg.Retention))
	if err != nil {
		l.logger.Error("journal prune failed", zap.Error(err))
		return
	}
	if removed > 0 {
		l.logger.Info("journal pruned", zap.Int("removed", removed))
	}
}

var _ usecase.ActivityRecorder = (*ActivityLog)(nil)
