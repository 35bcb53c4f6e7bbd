package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/trexxeseba/amadolibros-web/internal/metrics"
	"github.com/trexxeseba/amadolibros-web/internal/store"
	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

// Syncer runs one catalog sync.
type Syncer interface {
	RunSync(ctx context.Context, opts RunOptions) (*domain.SyncReport, error)
}

// Scheduler manages the periodic catalog sync and store maintenance tasks.
type Scheduler struct {
	cron   *cron.Cron
	syncer Syncer
	store  store.Store
	log    *slog.Logger
}

// NewScheduler creates a Scheduler. A zero interval disables that job.
func NewScheduler(
	syncer Syncer,
	s store.Store,
	syncInterval time.Duration,
	purgeInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sch := &Scheduler{
		cron:   c,
		syncer: syncer,
		store:  s,
		log:    log,
	}

	if syncInterval > 0 {
		if _, err := c.AddFunc("@every "+syncInterval.String(), sch.runSync); err != nil {
			return nil, err
		}
	}

	if purgeInterval > 0 {
		if _, err := c.AddFunc("@every "+purgeInterval.String(), sch.runPurge); err != nil {
			return nil, err
		}
	}

	return sch, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runSync() {
	ctx := context.Background()
	s.log.Info("scheduled sync starting")

	report, err := s.syncer.RunSync(ctx, RunOptions{})
	var cooldown *CooldownError
	switch {
	case errors.As(err, &cooldown):
		s.log.Info("scheduled sync skipped", "retry_after", cooldown.RetryAfter.Round(time.Second))
	case errors.Is(err, ErrSyncInProgress):
		s.log.Info("scheduled sync skipped, another run in progress")
	case err != nil:
		s.log.Error("scheduled sync failed", "error", err)
	default:
		s.log.Info("scheduled sync done", "status", report.Status, "total", report.Stats.Total)
	}
}

func (s *Scheduler) runPurge() {
	ctx := context.Background()

	n, err := s.store.Purge(ctx)
	if err != nil {
		metrics.StorePurgeErrorsTotal.Inc()
		s.log.Error("scheduled store purge failed", "error", err)
		return
	}
	metrics.StorePurgedTotal.Add(float64(n))
	s.log.Info("scheduled store purge done", "removed", n)
}
