package contract

import (
	"context"

	"pix-logview-be/internal/model"
)

// Mix100Repository searches PIX settlement message records.
type Mix100Repository interface {
	FindByControlNumber(ctx context.Context, controlNumber string) (model.ResultSet, error)
	FindByReturnEndToEndID(ctx context.Context, endToEndID string) (model.ResultSet, error)
}
