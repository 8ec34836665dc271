package contract

import (
	"context"

	"pix-logview-be/internal/model"
)

// TixlogRepository searches the payment transaction log. One row is one
// step of a payment flow, linked to its siblings by NR_CONTROLE.
type TixlogRepository interface {
	FindByControlNumber(ctx context.Context, controlNumber string) (model.ResultSet, error)
	FindByJDPIRequestID(ctx context.Context, requestID string) (model.ResultSet, error)
	FindByControlNumbers(ctx context.Context, controlNumbers []string) (model.ResultSet, error)
	// FindByJSONContent matches term against the sent and returned
	// payload columns and adds a derived MATCH_LOCATION column telling
	// where the hit occurred.
	FindByJSONContent(ctx context.Context, term string) (model.ResultSet, error)
	FindByOrigin(ctx context.Context, origin string) (model.ResultSet, error)

	// NewEntriesPerMinute counts correlation ids seen for the first
	// time in each minute of the last 24 hours.
	NewEntriesPerMinute(ctx context.Context) ([]model.MinuteCount, error)
	// TransactionSummary aggregates one correlation id: direction,
	// first/last step, elapsed ms and step count. Nil when the id has
	// no rows.
	TransactionSummary(ctx context.Context, controlNumber string) (*model.TransactionSummary, error)
	// PerformanceSummary returns per-correlation-id direction and
	// elapsed ms over the selected population.
	PerformanceSummary(ctx context.Context, window model.PerformanceWindow) ([]model.PerformanceRow, error)
}
