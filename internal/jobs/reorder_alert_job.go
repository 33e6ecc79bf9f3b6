package jobs

import (
	"context"
	"log/slog"

	"cannacommerce/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ReorderAlertJob periodically scans stock positions and logs every SKU whose
// available quantity has fallen to or below its reorder point, so purchasing
// can raise a replenishment order.
type ReorderAlertJob struct {
	handler queries.GetItemsBelowReorderPointQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReorderAlertJob creates a new job for low stock detection.
// Uses GetItemsBelowReorderPointQueryHandler to scan positions every five minutes.
func NewReorderAlertJob(handler queries.GetItemsBelowReorderPointQueryHandler, logger *slog.Logger) *ReorderAlertJob {
	return &ReorderAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reorder_alert_job"),
	}
}

// Start begins the reorder alert job to run every five minutes.
func (j *ReorderAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetItemsBelowReorderPointQuery()

		positions, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reorder alert job failed", "error", err)
			return
		}

		for _, p := range positions {
			j.logger.WarnContext(ctx, "Stock position at or below reorder point",
				"sku", p.SKU,
				"location", p.Location.String(),
				"available", p.Available,
				"reorderPoint", p.ReorderPoint,
				"reorderQuantity", p.ReorderQuantity,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reorder alert job started (running every five minutes)")
	return nil
}

// Stop stops the reorder alert job.
func (j *ReorderAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reorder alert job stopped")
}
