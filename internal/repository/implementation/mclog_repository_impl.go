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

type MclogRepositoryImpl struct {
	db *gorm.DB
}

func NewMclogRepository(db *gorm.DB) contract.MclogRepository {
	return &MclogRepositoryImpl{db: db}
}

func (r *MclogRepositoryImpl) FindByInfo(ctx context.Context, term string) (model.ResultSet, error) {
	if strings.TrimSpace(term) == "" {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(
		"SELECT TOP (%d) * FROM %s WITH (NOLOCK) WHERE OUTRAS_INFO LIKE ? ORDER BY ID DESC",
		constant.MclogCadRowCap, constant.TableMclogCad)
	return queryResultSet(ctx, r.db, query, likeContains(term))
}

func (r *MclogRepositoryImpl) OperationsPerMinute(ctx context.Context, hoursBack int) ([]model.FunctionMinuteCount, error) {
	if hoursBack <= 0 {
		hoursBack = 24
	}
	query := fmt.Sprintf(`
		SELECT
			FORMAT(DATAHORA, 'yyyy-MM-dd HH:mm') AS MINUTO,
			FUNCAO,
			COUNT(*) AS QUANTIDADE
		FROM %s WITH (NOLOCK)
		WHERE DATAHORA >= DATEADD(hour, -?, GETDATE())
		GROUP BY
			FORMAT(DATAHORA, 'yyyy-MM-dd HH:mm'),
			FUNCAO
		ORDER BY
			MINUTO ASC,
			FUNCAO`, constant.TableMclogCad)

	var counts []model.FunctionMinuteCount
	err := r.db.WithContext(ctx).Raw(query, hoursBack).Scan(&counts).Error
	return counts, err
}

func (r *MclogRepositoryImpl) LatestErrors(ctx context.Context) ([]model.OperationError, error) {
	// Narrow column list on purpose, OUTRAS_INFO aside the rest of the
	// row is wide and unused by the error feed.
	query := fmt.Sprintf(`
		SELECT TOP (%d)
			[ID], [USUARIO], [DATAHORA], [FUNCAO], [IAE], [OUTRAS_INFO], [CODIGO_CLIENTE]
		FROM %s WITH (NOLOCK)
		WHERE IAE = ? AND DATAHORA >= DATEADD(day, -1, GETDATE())
		ORDER BY ID DESC`,
		constant.LatestErrorRowCap, constant.TableMclogCad)

	var errorsOut []model.OperationError
	err := r.db.WithContext(ctx).Raw(query, constant.OperationErrorFlag).Scan(&errorsOut).Error
	return errorsOut, err
}
