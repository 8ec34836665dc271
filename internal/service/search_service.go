package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pix-logview-be/internal/dto"
	"pix-logview-be/internal/mapper"
	"pix-logview-be/internal/model"
	"pix-logview-be/internal/pkg/logger"
	"pix-logview-be/internal/repository/unitofwork"
)

// ErrDatabaseUnavailable wraps connection failures so the controller
// can answer 503 instead of a generic 500.
var ErrDatabaseUnavailable = errors.New("database unavailable")

// RepositoryProvider hands out live repositories, reconnecting behind
// the scenes when the session went stale. Implemented by the guardian.
type RepositoryProvider interface {
	Ensure(ctx context.Context) (*unitofwork.Repositories, error)
}

const (
	blockMix100       = "Resultados em MIX100"
	blockTixlogComp   = "Resultados Complementares em TIXLOG"
	blockMclog        = "Resultados em MCLOG CAD"
	blockMclogComp    = "Resultados Complementares em MCLOG CAD"
	blockMclogCct     = "Resultados em MCLOG CCT"
	blockTixlogSearch = "Resultados Principais em TIXLOG"
)

type ISearchService interface {
	Modes() []dto.SearchModeInfo
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	guardian RepositoryProvider
	mapper   *mapper.ResultMapper
	logger   logger.ILogger
}

func NewSearchService(guardian RepositoryProvider, m *mapper.ResultMapper, log logger.ILogger) ISearchService {
	return &searchService{
		guardian: guardian,
		mapper:   m,
		logger:   log,
	}
}

func (s *searchService) Modes() []dto.SearchModeInfo {
	modes := make([]dto.SearchModeInfo, 0, len(model.AllSearchModes))
	for _, mode := range model.AllSearchModes {
		modes = append(modes, dto.SearchModeInfo{
			ID:       string(mode),
			Label:    mode.Label(),
			UsesList: mode.UsesList(),
		})
	}
	return modes
}

func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	mode, err := model.ParseSearchMode(req.Mode)
	if err != nil {
		return nil, err
	}

	repos, err := s.guardian.Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}

	value := strings.TrimSpace(req.Value)
	values := normalizeList(req, mode)

	run := &searchRun{
		service:  s,
		repos:    repos,
		response: &dto.SearchResponse{Mode: string(mode)},
	}

	if mode.ShowsSummary() {
		summary, err := repos.Tixlog.TransactionSummary(ctx, value)
		if err != nil {
			run.notice("Sumário da Transação (TIXLOG)", err)
		} else {
			run.response.Summary = summary
		}
	}

	switch mode {
	case model.ModeMix100ControlNumber:
		run.mix100Block(blockMix100, func() (model.ResultSet, error) {
			return repos.Mix100.FindByControlNumber(ctx, value)
		})
		run.tixlogBlock(blockTixlogComp, func() (model.ResultSet, error) {
			return repos.Tixlog.FindByControlNumber(ctx, value)
		})
		run.plainBlock(blockMclogComp, func() (model.ResultSet, error) {
			return repos.Mclog.FindByInfo(ctx, value)
		})

	case model.ModeMix100ReturnEndToEnd:
		run.mix100Block(blockMix100, func() (model.ResultSet, error) {
			return repos.Mix100.FindByReturnEndToEndID(ctx, value)
		})

	case model.ModeMclogCctKytID:
		run.kytBlock(blockMclogCct, func() (model.ResultSet, error) {
			return repos.MclogCct.FindByKytID(ctx, value)
		})

	case model.ModeTixlogControlNumber:
		run.tixlogBlock(blockTixlogSearch, func() (model.ResultSet, error) {
			return repos.Tixlog.FindByControlNumber(ctx, value)
		})
		run.plainBlock(blockMclogComp, func() (model.ResultSet, error) {
			return repos.Mclog.FindByInfo(ctx, value)
		})

	case model.ModeTixlogJDPIRequestID:
		run.tixlogBlock(blockTixlogSearch, func() (model.ResultSet, error) {
			return repos.Tixlog.FindByJDPIRequestID(ctx, value)
		})
		run.plainBlock(blockMclogComp, func() (model.ResultSet, error) {
			return repos.Mclog.FindByInfo(ctx, value)
		})

	case model.ModeTixlogControlList:
		run.tixlogBlock(blockTixlogSearch, func() (model.ResultSet, error) {
			return repos.Tixlog.FindByControlNumbers(ctx, values)
		})
		run.complementaryFanOut(ctx, values)

	case model.ModeTixlogJSONContent:
		run.tixlogBlock(blockTixlogSearch, func() (model.ResultSet, error) {
			return repos.Tixlog.FindByJSONContent(ctx, value)
		})
		run.plainBlock(blockMclogComp, func() (model.ResultSet, error) {
			return repos.Mclog.FindByInfo(ctx, value)
		})

	case model.ModeTixlogOrigin:
		run.tixlogBlock(blockTixlogSearch, func() (model.ResultSet, error) {
			return repos.Tixlog.FindByOrigin(ctx, value)
		})
		run.plainBlock(blockMclogComp, func() (model.ResultSet, error) {
			return repos.Mclog.FindByInfo(ctx, value)
		})

	case model.ModeMclogInfo:
		run.plainBlock(blockMclog, func() (model.ResultSet, error) {
			return repos.Mclog.FindByInfo(ctx, value)
		})
	}

	run.response.Empty = run.allEmpty()
	return run.response, nil
}

// normalizeList trims list entries and drops blanks. A textarea-style
// newline-separated Value is accepted as a fallback input shape.
func normalizeList(req *dto.SearchRequest, mode model.SearchMode) []string {
	if !mode.UsesList() {
		return nil
	}

	raw := req.Values
	if len(raw) == 0 && req.Value != "" {
		raw = strings.Split(req.Value, "\n")
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// searchRun accumulates the blocks and notices of one interaction.
type searchRun struct {
	service  *searchService
	repos    *unitofwork.Repositories
	response *dto.SearchResponse
}

type lookup func() (model.ResultSet, error)

// fetch executes one lookup, degrading failures to an empty result
// plus a notice. Raw driver errors stay in the log, not the response.
func (r *searchRun) fetch(title string, fn lookup) model.ResultSet {
	rs, err := fn()
	if err != nil {
		r.notice(title, err)
		return model.ResultSet{}
	}
	return rs
}

func (r *searchRun) notice(title string, err error) {
	r.service.logger.Error("SearchService", "Query failed", map[string]interface{}{
		"block": title,
		"error": err.Error(),
	})
	r.response.Notices = append(r.response.Notices,
		fmt.Sprintf("A consulta '%s' falhou e foi ignorada.", title))
}

func (r *searchRun) plainBlock(title string, fn lookup) {
	rs := r.fetch(title, fn)
	r.response.Blocks = append(r.response.Blocks, dto.ResultBlock{Title: title, Table: rs})
}

func (r *searchRun) mix100Block(title string, fn lookup) {
	rs := r.fetch(title, fn)
	r.response.Blocks = append(r.response.Blocks, dto.ResultBlock{
		Title:      title,
		Table:      rs,
		Settlement: r.service.mapper.SettlementDetails(rs),
	})
}

func (r *searchRun) tixlogBlock(title string, fn lookup) {
	rs := r.fetch(title, fn)
	r.response.Blocks = append(r.response.Blocks, r.service.mapper.TixlogBlock(title, rs))
}

func (r *searchRun) kytBlock(title string, fn lookup) {
	rs := r.fetch(title, fn)
	r.response.Blocks = append(r.response.Blocks, dto.ResultBlock{
		Title: title,
		Table: rs,
		Kyt:   r.service.mapper.KytDecision(rs),
	})
}

// complementaryFanOut runs one operational-log lookup per list element
// and merges the results, deduplicating by row ID while merging rather
// than after the fact.
func (r *searchRun) complementaryFanOut(ctx context.Context, values []string) {
	merged := model.ResultSet{}
	seen := make(map[string]bool)

	for _, v := range values {
		rs := r.fetch(blockMclogComp, func() (model.ResultSet, error) {
			return r.repos.Mclog.FindByInfo(ctx, v)
		})
		if rs.Empty() {
			continue
		}
		if len(merged.Columns) == 0 {
			merged.Columns = rs.Columns
		}
		for _, row := range rs.Rows {
			key := fmt.Sprintf("%v", row["ID"])
			if seen[key] {
				continue
			}
			seen[key] = true
			merged.Rows = append(merged.Rows, row)
		}
	}

	r.response.Blocks = append(r.response.Blocks, dto.ResultBlock{
		Title: blockMclogComp,
		Table: merged,
	})
}

func (r *searchRun) allEmpty() bool {
	for _, block := range r.response.Blocks {
		if !block.Table.Empty() {
			return false
		}
	}
	return true
}
