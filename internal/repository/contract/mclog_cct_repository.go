package contract

import (
	"context"

	"pix-logview-be/internal/model"
)

// MclogCctRepository searches the compliance (CCT) operational log,
// where KYT decision fragments are written into OUTRAS_INFO.
type MclogCctRepository interface {
	FindByKytID(ctx context.Context, kytID string) (model.ResultSet, error)
}
