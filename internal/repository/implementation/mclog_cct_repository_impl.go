package implementation

import (
	"context"
	"fmt"
	"strings"

	"pix-logview-be/internal/constant"
	"pix-logview-be/internal/model"
	"pix-logview-be/internal/repository/contract"

	"gorm.io/gorm"
)

type MclogCctRepositoryImpl struct {
	db *gorm.DB
}

func NewMclogCctRepository(db *gorm.DB) contract.MclogCctRepository {
	return &MclogCctRepositoryImpl{db: db}
}

// FindByKytID substring-matches the KYT transaction id inside
// OUTRAS_INFO. The cap is higher than the other searches because one
// KYT check writes many surrounding rows.
func (r *MclogCctRepositoryImpl) FindByKytID(ctx context.Context, kytID string) (model.ResultSet, error) {
	if strings.TrimSpace(kytID) == "" {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(
		"SELECT TOP (%d) * FROM %s WITH (NOLOCK) WHERE OUTRAS_INFO LIKE ? ORDER BY ID DESC",
		constant.MclogCctRowCap, constant.TableMclogCct)
	return queryResultSet(ctx, r.db, query, likeContains(kytID))
}
