package contract

import (
	"context"

	"pix-logview-be/internal/model"
)

// MclogRepository searches the operational log of the account (CAD)
// database and serves its statistics feeds.
type MclogRepository interface {
	// FindByInfo substring-matches the free-text OUTRAS_INFO column
	// (account numbers, documents, PIX keys and the like end up there).
	FindByInfo(ctx context.Context, term string) (model.ResultSet, error)

	// OperationsPerMinute counts entries per function per minute over
	// the trailing hoursBack window.
	OperationsPerMinute(ctx context.Context, hoursBack int) ([]model.FunctionMinuteCount, error)
	// LatestErrors returns the most recent error-flagged entries of the
	// last 24 hours.
	LatestErrors(ctx context.Context) ([]model.OperationError, error)
}
