package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
)

// ReconcileJobs runs the reconciliation engine on a cadence so punches
// left behind by failed or missed manual runs are eventually picked up.
// The engine's idempotency marker makes re-invocation safe.
type ReconcileJobs struct {
	punchRepo  punch.PunchRepository
	reconciler punch.ReconciliationService
	interval   time.Duration
}

func NewReconcileJobs(
	punchRepo punch.PunchRepository,
	reconciler punch.ReconciliationService,
	interval time.Duration,
) *ReconcileJobs {
	return &ReconcileJobs{
		punchRepo:  punchRepo,
		reconciler: reconciler,
		interval:   interval,
	}
}

func (j *ReconcileJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconcile_pending_punches", j.interval, j.ReconcilePendingPunches)
}

func (j *ReconcileJobs) ReconcilePendingPunches(ctx context.Context) error {
	companyIDs, err := j.punchRepo.ListCompaniesWithUnreconciled(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies with pending punches: %w", err)
	}

	if len(companyIDs) == 0 {
		slog.Debug("Cron: no pending punches")
		return nil
	}

	for _, companyID := range companyIDs {
		summary, err := j.reconciler.ReconcileCompany(ctx, companyID, punch.ReconcileRequest{})
		if err != nil {
			// One broken company must not starve the rest.
			slog.Error("Cron: reconciliation run failed",
				"company_id", companyID,
				"error", err)
			continue
		}

		slog.Info("Cron: reconciliation run completed",
			"company_id", companyID,
			"run_id", summary.RunID,
			"processed", summary.Processed,
			"matched", summary.Matched,
			"unmatched", summary.Unmatched,
			"failed", summary.Failed)
	}

	return nil
}
