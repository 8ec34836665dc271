package model

import "fmt"

// SearchMode is the closed set of search types the dashboard offers.
// Each mode declares the input shape it needs so the orchestrator can
// match exhaustively instead of switching on free-text labels.
type SearchMode string

const (
	// ModeMix100ControlNumber is the full 360 lookup: settlement
	// record, then transaction log, then operational log.
	ModeMix100ControlNumber  SearchMode = "mix100_control_number"
	ModeMix100ReturnEndToEnd SearchMode = "mix100_return_end_to_end"
	ModeMclogCctKytID        SearchMode = "mclog_cct_kyt_id"
	ModeTixlogControlNumber  SearchMode = "tixlog_control_number"
	ModeTixlogJDPIRequestID  SearchMode = "tixlog_jdpi_request_id"
	ModeTixlogControlList    SearchMode = "tixlog_control_number_list"
	ModeTixlogJSONContent    SearchMode = "tixlog_json_content"
	ModeTixlogOrigin         SearchMode = "tixlog_origin"
	ModeMclogInfo            SearchMode = "mclog_info"
)

// AllSearchModes lists every mode in display order.
var AllSearchModes = []SearchMode{
	ModeMix100ControlNumber,
	ModeMix100ReturnEndToEnd,
	ModeMclogCctKytID,
	ModeTixlogControlNumber,
	ModeTixlogJDPIRequestID,
	ModeTixlogControlList,
	ModeTixlogJSONContent,
	ModeTixlogOrigin,
	ModeMclogInfo,
}

var searchModeLabels = map[SearchMode]string{
	ModeMix100ControlNumber:  "MIX100: Por NR_CONTROLE (Busca 360º)",
	ModeMix100ReturnEndToEnd: "MIX100: Por EndToEndId Devolução",
	ModeMclogCctKytID:        "MCLOG CCT: Por ID da Transação KYT",
	ModeTixlogControlNumber:  "TIXLOG: Por NR_CONTROLE",
	ModeTixlogJDPIRequestID:  "TIXLOG: Por IDREQJDPI",
	ModeTixlogControlList:    "TIXLOG: Por Lista de NR_CONTROLE (IN)",
	ModeTixlogJSONContent:    "TIXLOG: Por Conteúdo no JSON (LIKE)",
	ModeTixlogOrigin:         "TIXLOG: Por Origem",
	ModeMclogInfo:            "MCLOG CAD: Busca Geral em OUTRAS_INFO",
}

// Valid reports whether the mode is one of the nine known types.
func (m SearchMode) Valid() bool {
	_, ok := searchModeLabels[m]
	return ok
}

// Label is the human-readable name shown in the mode selector.
func (m SearchMode) Label() string {
	if label, ok := searchModeLabels[m]; ok {
		return label
	}
	return string(m)
}

// UsesList reports whether the mode takes a list of values instead of
// a single free-text input.
func (m SearchMode) UsesList() bool {
	return m == ModeTixlogControlList
}

// ShowsSummary reports whether the mode renders the transaction
// duration summary block before the result tables.
func (m SearchMode) ShowsSummary() bool {
	return m == ModeMix100ControlNumber || m == ModeTixlogControlNumber
}

// ParseSearchMode validates a wire value against the closed mode set.
func ParseSearchMode(raw string) (SearchMode, error) {
	mode := SearchMode(raw)
	if !mode.Valid() {
		return "", fmt.Errorf("unknown search mode %q", raw)
	}
	return mode, nil
}
