package constant

// Fully qualified table names on the inspected SQL Server instances.
// These schemas belong to the producing systems; this service never
// migrates or writes them.
const (
	TableTixlog   = "[indigo_pix].[dbo].[TIXLOG]"
	TableMclogCad = "[indigo_cad].[dbo].[MCLOG]"
	TableMix100   = "[indigo_pix].[dbo].[MIX100]"
	TableMclogCct = "[indigo_cct].[dbo].[MCLOG]"
)

// Row caps per operation. Every search is bounded to protect the
// source databases from accidental full scans.
const (
	TixlogRowCap      = 1000
	Mix100RowCap      = 500
	MclogCadRowCap    = 1000
	MclogCctRowCap    = 5000
	LatestErrorRowCap = 1000
	PerformanceSample = 100000
)

// Direction inference keywords. The actor names are the production
// service accounts of the sending/receiving PIX workers; the
// description keywords cover legacy rows written before the split.
const (
	OutboundActor       = "envia_pix_prod"
	InboundActor        = "recebe_pix_prod"
	OutboundDescKeyword = "%DÉBITO%"
	InboundDescKeyword  = "%CRÉDITO%"
	DirectionOut        = "OUT"
	DirectionIn         = "IN"
	DirectionUndefined  = "Indefinido"
	OperationErrorFlag  = "E"
)

// Settlement message status flags (MIX100.STATUS_MENSAGEM).
const (
	SettlementReturned = "D"
	SettlementAwaiting = "A"
	SettlementSettled  = "L"
	SettlementEmpty    = "V"
	SettlementError    = "E"
)

// SettlementStatusLegend maps a status flag to its display label.
var SettlementStatusLegend = map[string]string{
	SettlementReturned: "Devolvido",
	SettlementAwaiting: "Aguardando",
	SettlementSettled:  "Liquidado",
	SettlementEmpty:    "Valor Vazio/Desconhecido",
	SettlementError:    "Erro",
}

// KytDecisionKeywords mark the MCLOG CCT row that carries the final
// KYT verdict. Matched case-insensitively against OUTRAS_INFO.
var KytDecisionKeywords = []string{
	"aprovado",
	"rejeitado",
	"approved",
	"rejected",
	`"ALLOW"`,
	`"DENY"`,
}
