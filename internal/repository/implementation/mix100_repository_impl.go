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

type Mix100RepositoryImpl struct {
	db *gorm.DB
}

func NewMix100Repository(db *gorm.DB) contract.Mix100Repository {
	return &Mix100RepositoryImpl{db: db}
}

func (r *Mix100RepositoryImpl) FindByControlNumber(ctx context.Context, controlNumber string) (model.ResultSet, error) {
	if strings.TrimSpace(controlNumber) == "" {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(
		"SELECT TOP (%d) * FROM %s WITH (NOLOCK) WHERE NR_CONTROLE = ? ORDER BY ID DESC",
		constant.Mix100RowCap, constant.TableMix100)
	return queryResultSet(ctx, r.db, query, controlNumber)
}

func (r *Mix100RepositoryImpl) FindByReturnEndToEndID(ctx context.Context, endToEndID string) (model.ResultSet, error) {
	if strings.TrimSpace(endToEndID) == "" {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(
		"SELECT TOP (%d) * FROM %s WITH (NOLOCK) WHERE ENDTOENDIDDEVOLUCAO = ? ORDER BY ID DESC",
		constant.Mix100RowCap, constant.TableMix100)
	return queryResultSet(ctx, r.db, query, endToEndID)
}
