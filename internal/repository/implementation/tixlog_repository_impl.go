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

type TixlogRepositoryImpl struct {
	db *gorm.DB
}

func NewTixlogRepository(db *gorm.DB) contract.TixlogRepository {
	return &TixlogRepositoryImpl{db: db}
}

// directionCase is the per-row direction classification. MAX over the
// group picks the lexically greatest label when rows disagree; that
// tie-break is long-standing observed behavior, kept as-is.
func directionCase() string {
	return fmt.Sprintf(`MAX(
				CASE
					WHEN USUARIO = '%s' OR DESCRICAO LIKE '%s' THEN '%s'
					WHEN USUARIO = '%s' OR DESCRICAO LIKE '%s' THEN '%s'
					ELSE '%s'
				END
			) AS TIPO_OPERACAO`,
		constant.OutboundActor, constant.OutboundDescKeyword, constant.DirectionOut,
		constant.InboundActor, constant.InboundDescKeyword, constant.DirectionIn,
		constant.DirectionUndefined)
}

func (r *TixlogRepositoryImpl) FindByControlNumber(ctx context.Context, controlNumber string) (model.ResultSet, error) {
	if strings.TrimSpace(controlNumber) == "" {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(
		"SELECT TOP (%d) * FROM %s WITH (NOLOCK) WHERE NR_CONTROLE = ? ORDER BY ID DESC",
		constant.TixlogRowCap, constant.TableTixlog)
	return queryResultSet(ctx, r.db, query, controlNumber)
}

func (r *TixlogRepositoryImpl) FindByJDPIRequestID(ctx context.Context, requestID string) (model.ResultSet, error) {
	if strings.TrimSpace(requestID) == "" {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(
		"SELECT TOP (%d) * FROM %s WITH (NOLOCK) WHERE IDREQJDPI = ? ORDER BY ID DESC",
		constant.TixlogRowCap, constant.TableTixlog)
	return queryResultSet(ctx, r.db, query, requestID)
}

func (r *TixlogRepositoryImpl) FindByControlNumbers(ctx context.Context, controlNumbers []string) (model.ResultSet, error) {
	if len(controlNumbers) == 0 {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(
		"SELECT TOP (%d) * FROM %s WITH (NOLOCK) WHERE NR_CONTROLE IN (%s) ORDER BY ID DESC",
		constant.TixlogRowCap, constant.TableTixlog, inPlaceholders(len(controlNumbers)))

	args := make([]interface{}, len(controlNumbers))
	for i, nr := range controlNumbers {
		args[i] = nr
	}
	return queryResultSet(ctx, r.db, query, args...)
}

func (r *TixlogRepositoryImpl) FindByJSONContent(ctx context.Context, term string) (model.ResultSet, error) {
	if strings.TrimSpace(term) == "" {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(`
		SELECT TOP (%d)
			*,
			CASE
				WHEN [JSON] LIKE ? AND [JSON_RETORNO] LIKE ? THEN 'Ambos'
				WHEN [JSON] LIKE ? THEN 'JSON Enviado'
				WHEN [JSON_RETORNO] LIKE ? THEN 'JSON Retorno'
			END AS MATCH_LOCATION
		FROM %s WITH (NOLOCK)
		WHERE ([JSON] LIKE ? OR [JSON_RETORNO] LIKE ?)
		ORDER BY ID DESC`,
		constant.TixlogRowCap, constant.TableTixlog)

	pattern := likeContains(term)
	return queryResultSet(ctx, r.db, query, pattern, pattern, pattern, pattern, pattern, pattern)
}

func (r *TixlogRepositoryImpl) FindByOrigin(ctx context.Context, origin string) (model.ResultSet, error) {
	if strings.TrimSpace(origin) == "" {
		return model.ResultSet{}, nil
	}
	query := fmt.Sprintf(
		"SELECT TOP (%d) * FROM %s WITH (NOLOCK) WHERE ORIGEM = ? ORDER BY ID DESC",
		constant.TixlogRowCap, constant.TableTixlog)
	return queryResultSet(ctx, r.db, query, origin)
}

func (r *TixlogRepositoryImpl) NewEntriesPerMinute(ctx context.Context) ([]model.MinuteCount, error) {
	query := fmt.Sprintf(`
		WITH FirstOccurrences AS (
			SELECT
				[DATAHORA],
				[NR_CONTROLE],
				ROW_NUMBER() OVER(PARTITION BY [NR_CONTROLE] ORDER BY [DATAHORA] ASC) AS APPEARANCE_ORDER
			FROM %s WITH (NOLOCK)
			WHERE [DATAHORA] >= DATEADD(day, -1, GETDATE())
		)
		SELECT
			FORMAT([DATAHORA], 'yyyy-MM-dd HH:mm') AS MINUTO,
			COUNT(*) AS QUANTIDADE
		FROM FirstOccurrences
		WHERE APPEARANCE_ORDER = 1
		GROUP BY FORMAT([DATAHORA], 'yyyy-MM-dd HH:mm')
		ORDER BY MINUTO ASC`, constant.TableTixlog)

	var counts []model.MinuteCount
	err := r.db.WithContext(ctx).Raw(query).Scan(&counts).Error
	return counts, err
}

func (r *TixlogRepositoryImpl) TransactionSummary(ctx context.Context, controlNumber string) (*model.TransactionSummary, error) {
	if strings.TrimSpace(controlNumber) == "" {
		return nil, nil
	}
	query := fmt.Sprintf(`
		WITH OperationType_CTE AS (
			SELECT
				NR_CONTROLE,
				%s
			FROM %s WITH (NOLOCK)
			WHERE NR_CONTROLE = ?
			GROUP BY NR_CONTROLE
		),
		TransactionAggregation_CTE AS (
			SELECT
				NR_CONTROLE,
				MIN(DATAHORA) AS PRIMEIRA_OPERACAO,
				MAX(DATAHORA) AS ULTIMA_OPERACAO,
				DATEDIFF(MILLISECOND, MIN(DATAHORA), MAX(DATAHORA)) AS INTERVALO_TOTAL_MS,
				COUNT(ID) AS QUANTIDADE_ETAPAS
			FROM %s WITH (NOLOCK)
			WHERE NR_CONTROLE = ?
			GROUP BY NR_CONTROLE
		)
		SELECT
			agg.NR_CONTROLE,
			ISNULL(ot.TIPO_OPERACAO, '%s') AS TIPO_OPERACAO,
			agg.PRIMEIRA_OPERACAO,
			agg.ULTIMA_OPERACAO,
			agg.INTERVALO_TOTAL_MS,
			agg.QUANTIDADE_ETAPAS
		FROM TransactionAggregation_CTE agg
		LEFT JOIN OperationType_CTE ot ON agg.NR_CONTROLE = ot.NR_CONTROLE`,
		directionCase(), constant.TableTixlog, constant.TableTixlog, constant.DirectionUndefined)

	var summaries []model.TransactionSummary
	if err := r.db.WithContext(ctx).Raw(query, controlNumber, controlNumber).Scan(&summaries).Error; err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, nil
	}
	return &summaries[0], nil
}

func (r *TixlogRepositoryImpl) PerformanceSummary(ctx context.Context, window model.PerformanceWindow) ([]model.PerformanceRow, error) {
	var source string
	switch window {
	case model.WindowLast24h:
		source = fmt.Sprintf("%s WITH (NOLOCK) WHERE [DATAHORA] >= DATEADD(day, -1, GETDATE())",
			constant.TableTixlog)
	case model.WindowLast100k:
		source = fmt.Sprintf("(SELECT TOP %d * FROM %s WITH (NOLOCK) ORDER BY ID DESC) AS RecentLogs",
			constant.PerformanceSample, constant.TableTixlog)
	default:
		return nil, fmt.Errorf("unknown performance window %q", window)
	}

	query := fmt.Sprintf(`
		WITH OperationType_CTE AS (
			SELECT
				NR_CONTROLE,
				%s
			FROM %s
			GROUP BY NR_CONTROLE
		),
		TransactionAggregation_CTE AS (
			SELECT
				NR_CONTROLE,
				DATEDIFF(MILLISECOND, MIN(DATAHORA), MAX(DATAHORA)) AS INTERVALO_TOTAL_MS
			FROM %s
			GROUP BY NR_CONTROLE
		)
		SELECT
			agg.NR_CONTROLE,
			ISNULL(ot.TIPO_OPERACAO, '%s') AS TIPO_OPERACAO,
			agg.INTERVALO_TOTAL_MS
		FROM TransactionAggregation_CTE agg
		LEFT JOIN OperationType_CTE ot ON agg.NR_CONTROLE = ot.NR_CONTROLE`,
		directionCase(), source, source, constant.DirectionUndefined)

	var out []model.PerformanceRow
	err := r.db.WithContext(ctx).Raw(query).Scan(&out).Error
	return out, err
}
