package dto

import (
	"time"

	"pix-logview-be/internal/model"
	"pix-logview-be/internal/pkg/jsontext"
)

type SearchRequest struct {
	Mode string `json:"mode" validate:"required"`
	// Value carries the single-input modes; Values carries the
	// list-based ones. The orchestrator enforces the right shape per
	// mode.
	Value  string   `json:"value"`
	Values []string `json:"values"`
}

type SearchModeInfo struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	UsesList bool   `json:"uses_list"`
}

// SettlementDetails decodes the latest MIX100 status flag and ships
// the legend for the frontend caption.
type SettlementDetails struct {
	LatestStatus string            `json:"latest_status"`
	Description  string            `json:"description"`
	Legend       map[string]string `json:"legend"`
}

// TixlogRowDetail is one expandable row detail: the payload columns
// hidden from the main table, rendered as JSON when they parse.
type TixlogRowDetail struct {
	ID            interface{}       `json:"id"`
	ControlNumber string            `json:"control_number"`
	Origin        string            `json:"origin"`
	SentPayload   jsontext.Rendered `json:"sent_payload"`
	ReturnPayload jsontext.Rendered `json:"return_payload"`
}

// KytDecisionDetails is the extracted final KYT verdict.
type KytDecisionDetails struct {
	Action    string            `json:"action"`
	DecidedAt *time.Time        `json:"decided_at,omitempty"`
	Content   jsontext.Rendered `json:"content"`
}

// ResultBlock is one titled result table plus its mode-specific
// presentation details.
type ResultBlock struct {
	Title      string              `json:"title"`
	Table      model.ResultSet     `json:"table"`
	Settlement *SettlementDetails  `json:"settlement,omitempty"`
	Kyt        *KytDecisionDetails `json:"kyt,omitempty"`
	RowDetails []TixlogRowDetail   `json:"row_details,omitempty"`
}

type SearchResponse struct {
	Mode    string                    `json:"mode"`
	Summary *model.TransactionSummary `json:"summary,omitempty"`
	Blocks  []ResultBlock             `json:"blocks"`
	// Notices carries non-fatal query failures; the interaction
	// continues with the affected block empty.
	Notices []string `json:"notices,omitempty"`
	// Empty is true only when every invoked lookup came back empty.
	Empty bool `json:"empty"`
}
