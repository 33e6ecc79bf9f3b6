package jobs

import (
	"context"
	"log/slog"
	"time"

	"cannacommerce/internal/core/application/usecases/queries"
	"cannacommerce/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long a submitted order may wait for an acknowledgment
// before it is flagged for follow-up with the seller.
const staleAfter = 24 * time.Hour

// StaleOrderJob periodically scans open orders and logs every order that has
// been sitting in the submitted state past the acknowledgment deadline.
type StaleOrderJob struct {
	handler queries.GetOpenOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewStaleOrderJob creates a new job for detecting unacknowledged orders.
// Uses GetOpenOrdersQueryHandler to scan the open order book every minute.
func NewStaleOrderJob(handler queries.GetOpenOrdersQueryHandler, logger *slog.Logger) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_job"),
		now:     time.Now,
	}
}

// Start begins the stale order job to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOpenOrdersQuery()

		openOrders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
			return
		}

		deadline := j.now().Add(-staleAfter)
		for _, o := range openOrders {
			if o.Status != order.Submitted || o.SubmittedAt == nil {
				continue
			}
			if o.SubmittedAt.After(deadline) {
				continue
			}
			j.logger.WarnContext(ctx, "Order awaiting acknowledgment past deadline",
				"poNumber", o.PONumber,
				"submittedAt", o.SubmittedAt.Format(time.RFC3339),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
