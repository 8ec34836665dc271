package mapper

import (
	"fmt"
	"strings"
	"time"

	"pix-logview-be/internal/constant"
	"pix-logview-be/internal/dto"
	"pix-logview-be/internal/model"
	"pix-logview-be/internal/pkg/jsontext"
)

// ResultMapper turns raw result sets into the presentation details the
// dashboard renders around each table.
type ResultMapper struct{}

func NewResultMapper() *ResultMapper {
	return &ResultMapper{}
}

// rowString reads a column as string, tolerating NULLs and non-string
// driver types.
func rowString(row model.Row, column string) string {
	v, ok := row[column]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// SettlementDetails decodes the newest STATUS_MENSAGEM of a MIX100
// result. Rows come back ID DESC, so the first row is the latest state.
func (m *ResultMapper) SettlementDetails(rs model.ResultSet) *dto.SettlementDetails {
	if rs.Empty() {
		return nil
	}

	status := rowString(rs.Rows[0], "STATUS_MENSAGEM")
	description, ok := constant.SettlementStatusLegend[status]
	if !ok {
		description = fmt.Sprintf("Status Desconhecido (%s)", status)
	}

	return &dto.SettlementDetails{
		LatestStatus: status,
		Description:  description,
		Legend:       constant.SettlementStatusLegend,
	}
}

// TixlogBlock hides the payload columns from the main table and moves
// them into per-row expandable details.
func (m *ResultMapper) TixlogBlock(title string, rs model.ResultSet) dto.ResultBlock {
	block := dto.ResultBlock{
		Title: title,
		Table: rs.Without("JSON", "JSON_RETORNO"),
	}
	if rs.Empty() {
		return block
	}

	for _, row := range rs.Rows {
		block.RowDetails = append(block.RowDetails, dto.TixlogRowDetail{
			ID:            row["ID"],
			ControlNumber: rowString(row, "NR_CONTROLE"),
			Origin:        rowString(row, "ORIGEM"),
			SentPayload:   jsontext.Render(rowString(row, "JSON")),
			ReturnPayload: jsontext.Render(rowString(row, "JSON_RETORNO")),
		})
	}
	return block
}

// KytDecision scans the CCT result for the first row carrying a
// decision keyword and extracts the verdict from its embedded JSON.
func (m *ResultMapper) KytDecision(rs model.ResultSet) *dto.KytDecisionDetails {
	if rs.Empty() {
		return nil
	}

	for _, row := range rs.Rows {
		info := rowString(row, "OUTRAS_INFO")
		if info == "" || !containsDecisionKeyword(info) {
			continue
		}

		details := &dto.KytDecisionDetails{
			Action:  jsontext.ExtractAction(info),
			Content: jsontext.Render(info),
		}
		if ts, ok := row["DATAHORA"].(time.Time); ok {
			details.DecidedAt = &ts
		}
		return details
	}
	return nil
}

func containsDecisionKeyword(info string) bool {
	lowered := strings.ToLower(info)
	for _, keyword := range constant.KytDecisionKeywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
