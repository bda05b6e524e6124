// Package sweeper runs the maintenance background loop: preventive-schedule
// scanning, urgent-request assignment, and daily report archiving.
package sweeper

import (
	"context"
	"time"

	"reception/config"
	preventiveService "reception/internal/domains/preventive/service"
	reportService "reception/internal/domains/report/service"
	workorderService "reception/internal/domains/workorder/service"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Sweeper struct {
	preventiveSvc preventiveService.Preventive
	workorderSvc  workorderService.WorkOrder
	reportSvc     reportService.Report
	cfg           *config.Config
}

func New(
	preventiveSvc preventiveService.Preventive,
	workorderSvc workorderService.WorkOrder,
	reportSvc reportService.Report,
	cfg *config.Config,
) *Sweeper {
	return &Sweeper{
		preventiveSvc: preventiveSvc,
		workorderSvc:  workorderSvc,
		reportSvc:     reportSvc,
		cfg:           cfg,
	}
}

// Run loops until the context is cancelled. A failed cycle backs off to the
// retry interval instead of the normal cadence. Errors never leave the loop.
func (s *Sweeper) Run(ctx context.Context) {
	log.Info().
		Dur("interval", s.cfg.SweepInterval()).
		Msg("maintenance sweeper started")

	interval := s.nextInterval(s.RunOnce(ctx))

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("maintenance sweeper shutting down")

			return
		case <-timer.C:
			timer.Reset(s.nextInterval(s.RunOnce(ctx)))
		}
	}
}

func (s *Sweeper) nextInterval(err error) time.Duration {
	if err != nil {
		log.Error().Err(err).Dur("retryIn", s.cfg.SweepRetry()).Msg("sweep cycle failed")

		return s.cfg.SweepRetry()
	}

	return s.cfg.SweepInterval()
}

// RunOnce executes a single sweep cycle: scan preventive schedules, assign
// urgent requests, archive the daily report. Exposed so tests and operators
// can drive cycles without waiting on the timer.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	started := timezone.Now()

	generated, err := s.preventiveSvc.Scan(ctx)
	if err != nil {
		return err
	}

	assigned, err := s.workorderSvc.AssignUrgent(ctx)
	if err != nil {
		return err
	}

	report, err := s.reportSvc.ArchiveDaily(ctx, started)
	if err != nil {
		return err
	}

	log.Info().
		Int("preventiveRequestsRaised", generated).
		Int("urgentRequestsAssigned", assigned).
		Float64("completionRate", report.CompletionRate).
		Dur("took", timezone.Now().Sub(started)).
		Msg("sweep cycle finished")

	return nil
}
