package service

import (
	"context"
	"fmt"
	"sort"

	"pix-logview-be/internal/constant"
	"pix-logview-be/internal/dto"
	"pix-logview-be/internal/model"
	"pix-logview-be/internal/pkg/logger"
	"pix-logview-be/internal/pkg/stats"
)

type IStatsService interface {
	EntriesPerMinute(ctx context.Context) (*dto.EntriesPerMinuteResponse, error)
	OperationsPerFunction(ctx context.Context, hoursBack int, functions []string) (*dto.OperationsResponse, error)
	LatestErrors(ctx context.Context) (*dto.LatestErrorsResponse, error)
	Performance(ctx context.Context, window model.PerformanceWindow) (*dto.PerformanceResponse, error)
}

const (
	feedEntriesPerMinute = "Novas Entradas por Minuto (TIXLOG)"
	feedOperations       = "Operações por Função (MCLOG CAD)"
	feedLatestErrors     = "Últimos Erros (MCLOG CAD)"
	feedPerformance      = "Resumo de Desempenho (TIXLOG)"
)

type statsService struct {
	guardian RepositoryProvider
	logger   logger.ILogger
}

func NewStatsService(guardian RepositoryProvider, log logger.ILogger) IStatsService {
	return &statsService{
		guardian: guardian,
		logger:   log,
	}
}

func (s *statsService) EntriesPerMinute(ctx context.Context) (*dto.EntriesPerMinuteResponse, error) {
	repos, err := s.guardian.Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}

	points, err := repos.Tixlog.NewEntriesPerMinute(ctx)
	if err != nil {
		return &dto.EntriesPerMinuteResponse{Notices: []string{s.notice(feedEntriesPerMinute, err)}}, nil
	}
	return &dto.EntriesPerMinuteResponse{Points: points}, nil
}

// notice logs a failed statistics query and returns the operator
// message. The feed degrades to an empty payload; raw driver errors
// stay in the log, not the response.
func (s *statsService) notice(feed string, err error) string {
	s.logger.Error("StatsService", "Query failed", map[string]interface{}{
		"feed":  feed,
		"error": err.Error(),
	})
	return fmt.Sprintf("A consulta '%s' falhou e foi ignorada.", feed)
}

// allowedHours are the lookback windows offered by the dashboard.
var allowedHours = map[int]bool{1: true, 6: true, 24: true}

func (s *statsService) OperationsPerFunction(ctx context.Context, hoursBack int, functions []string) (*dto.OperationsResponse, error) {
	if !allowedHours[hoursBack] {
		return nil, fmt.Errorf("unsupported lookback window: %d hours", hoursBack)
	}

	repos, err := s.guardian.Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}

	raw, err := repos.Mclog.OperationsPerMinute(ctx, hoursBack)
	if err != nil {
		res := pivotOperations(hoursBack, nil, functions)
		res.Notices = []string{s.notice(feedOperations, err)}
		return res, nil
	}

	return pivotOperations(hoursBack, raw, functions), nil
}

// pivotOperations turns (minute, function, count) rows into one
// zero-filled series per function, optionally filtered to a function
// subset.
func pivotOperations(hoursBack int, raw []model.FunctionMinuteCount, filter []string) *dto.OperationsResponse {
	wanted := make(map[string]bool, len(filter))
	for _, f := range filter {
		wanted[f] = true
	}

	minuteSet := make(map[string]bool)
	functionSet := make(map[string]bool)
	counts := make(map[string]map[string]int64)

	for _, row := range raw {
		functionSet[row.Function] = true
		if len(wanted) > 0 && !wanted[row.Function] {
			continue
		}
		minuteSet[row.Minute] = true
		if counts[row.Function] == nil {
			counts[row.Function] = make(map[string]int64)
		}
		counts[row.Function][row.Minute] = row.Count
	}

	minutes := make([]string, 0, len(minuteSet))
	for m := range minuteSet {
		minutes = append(minutes, m)
	}
	sort.Strings(minutes)

	functions := make([]string, 0, len(functionSet))
	for f := range functionSet {
		functions = append(functions, f)
	}
	sort.Strings(functions)

	res := &dto.OperationsResponse{
		HoursBack: hoursBack,
		Minutes:   minutes,
		Functions: functions,
		Raw:       raw,
	}
	for _, f := range functions {
		if len(wanted) > 0 && !wanted[f] {
			continue
		}
		series := dto.FunctionSeries{Function: f, Counts: make([]int64, len(minutes))}
		for i, m := range minutes {
			series.Counts[i] = counts[f][m]
		}
		res.Series = append(res.Series, series)
	}
	return res
}

func (s *statsService) LatestErrors(ctx context.Context) (*dto.LatestErrorsResponse, error) {
	repos, err := s.guardian.Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}

	errorsOut, err := repos.Mclog.LatestErrors(ctx)
	if err != nil {
		return &dto.LatestErrorsResponse{Notices: []string{s.notice(feedLatestErrors, err)}}, nil
	}
	return &dto.LatestErrorsResponse{Errors: errorsOut}, nil
}

func (s *statsService) Performance(ctx context.Context, window model.PerformanceWindow) (*dto.PerformanceResponse, error) {
	repos, err := s.guardian.Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}

	rows, err := repos.Tixlog.PerformanceSummary(ctx, window)
	if err != nil {
		return &dto.PerformanceResponse{
			Window:  string(window),
			Notices: []string{s.notice(feedPerformance, err)},
		}, nil
	}

	var inbound, outbound []float64
	for _, row := range rows {
		switch row.Direction {
		case constant.DirectionIn:
			inbound = append(inbound, float64(row.ElapsedMS))
		case constant.DirectionOut:
			outbound = append(outbound, float64(row.ElapsedMS))
		}
	}

	return &dto.PerformanceResponse{
		Window:   string(window),
		Inbound:  directionStats(inbound),
		Outbound: directionStats(outbound),
	}, nil
}

func directionStats(sample []float64) dto.DirectionStats {
	return dto.DirectionStats{
		Count:    len(sample),
		MeanMS:   stats.Mean(sample),
		MedianMS: stats.Median(sample),
		P95MS:    stats.Quantile(sample, 0.95),
	}
}
