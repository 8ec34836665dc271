package model

import "time"

// TransactionSummary is the aggregated view of one correlation id in
// TIXLOG: direction, first/last step and total elapsed time.
type TransactionSummary struct {
	ControlNumber  string    `gorm:"column:NR_CONTROLE" json:"control_number"`
	Direction      string    `gorm:"column:TIPO_OPERACAO" json:"direction"`
	FirstOperation time.Time `gorm:"column:PRIMEIRA_OPERACAO" json:"first_operation"`
	LastOperation  time.Time `gorm:"column:ULTIMA_OPERACAO" json:"last_operation"`
	ElapsedMS      int64     `gorm:"column:INTERVALO_TOTAL_MS" json:"elapsed_ms"`
	StepCount      int64     `gorm:"column:QUANTIDADE_ETAPAS" json:"step_count"`
}

// MinuteCount is one time bucket of first-occurrence correlation ids.
type MinuteCount struct {
	Minute string `gorm:"column:MINUTO" json:"minute"`
	Count  int64  `gorm:"column:QUANTIDADE" json:"count"`
}

// FunctionMinuteCount is one time bucket of operational-log entries for
// a single function.
type FunctionMinuteCount struct {
	Minute   string `gorm:"column:MINUTO" json:"minute"`
	Function string `gorm:"column:FUNCAO" json:"function"`
	Count    int64  `gorm:"column:QUANTIDADE" json:"count"`
}

// PerformanceRow is one correlation id with its inferred direction and
// elapsed time, the raw material for the latency percentiles.
type PerformanceRow struct {
	ControlNumber string `gorm:"column:NR_CONTROLE" json:"control_number"`
	Direction     string `gorm:"column:TIPO_OPERACAO" json:"direction"`
	ElapsedMS     int64  `gorm:"column:INTERVALO_TOTAL_MS" json:"elapsed_ms"`
}

// OperationError is one error-flagged operational log entry.
type OperationError struct {
	ID         int64     `gorm:"column:ID" json:"id"`
	Actor      string    `gorm:"column:USUARIO" json:"actor"`
	Timestamp  time.Time `gorm:"column:DATAHORA" json:"timestamp"`
	Function   string    `gorm:"column:FUNCAO" json:"function"`
	StatusFlag string    `gorm:"column:IAE" json:"status_flag"`
	Info       string    `gorm:"column:OUTRAS_INFO" json:"info"`
	ClientCode string    `gorm:"column:CODIGO_CLIENTE" json:"client_code"`
}

// PerformanceWindow selects the population for a performance analysis.
type PerformanceWindow string

const (
	// WindowLast24h aggregates every transaction of the last 24 hours.
	WindowLast24h PerformanceWindow = "24h"
	// WindowLast100k aggregates the most recent 100k log entries.
	WindowLast100k PerformanceWindow = "100k"
)
