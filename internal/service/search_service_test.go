package service

import (
	"context"
	"errors"
	"testing"

	"pix-logview-be/internal/dto"
	"pix-logview-be/internal/mapper"
	"pix-logview-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModesCatalog(t *testing.T) {
	repos, _, _, _, _ := newFakeRepos()
	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	modes := svc.Modes()
	require.Len(t, modes, len(model.AllSearchModes))
	for i, mode := range model.AllSearchModes {
		assert.Equal(t, string(mode), modes[i].ID)
		assert.Equal(t, mode.Label(), modes[i].Label)
	}
}

func TestSearchRejectsUnknownMode(t *testing.T) {
	repos, _, _, _, _ := newFakeRepos()
	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Mode: "bogus"})
	assert.Error(t, err)
}

func TestSearchDatabaseUnavailable(t *testing.T) {
	svc := NewSearchService(&fakeProvider{err: errors.New("login failed")}, mapper.NewResultMapper(), nopLogger{})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:  string(model.ModeMclogInfo),
		Value: "12345",
	})
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}

func TestSearchControlNumberBlocksAndSummary(t *testing.T) {
	repos, tixlog, mclog, _, _ := newFakeRepos()

	tixlog.summary = func(controlNumber string) (*model.TransactionSummary, error) {
		assert.Equal(t, "E123", controlNumber)
		return &model.TransactionSummary{ControlNumber: "E123", Direction: "OUT", StepCount: 4}, nil
	}
	tixlog.byControlNumber = func(controlNumber string) (model.ResultSet, error) {
		return model.ResultSet{
			Columns: []string{"ID", "NR_CONTROLE"},
			Rows:    []model.Row{{"ID": int64(1), "NR_CONTROLE": "E123"}},
		}, nil
	}
	mclog.byInfo = func(term string) (model.ResultSet, error) {
		return model.ResultSet{}, nil
	}

	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:  string(model.ModeTixlogControlNumber),
		Value: "  E123  ",
	})
	require.NoError(t, err)

	require.NotNil(t, res.Summary)
	assert.Equal(t, "OUT", res.Summary.Direction)

	require.Len(t, res.Blocks, 2)
	assert.Equal(t, "Resultados Principais em TIXLOG", res.Blocks[0].Title)
	assert.Equal(t, "Resultados Complementares em MCLOG CAD", res.Blocks[1].Title)
	assert.False(t, res.Empty)
	assert.Empty(t, res.Notices)
}

func TestSearchNoSummaryOutsideControlNumberModes(t *testing.T) {
	repos, tixlog, _, _, _ := newFakeRepos()
	tixlog.summary = func(string) (*model.TransactionSummary, error) {
		t.Fatal("summary must not be computed for this mode")
		return nil, nil
	}

	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:  string(model.ModeTixlogOrigin),
		Value: "JDPI",
	})
	require.NoError(t, err)
	assert.Nil(t, res.Summary)
}

func TestSearchFailedQueryDegradesToNotice(t *testing.T) {
	repos, tixlog, mclog, _, _ := newFakeRepos()
	tixlog.byOrigin = func(string) (model.ResultSet, error) {
		return model.ResultSet{}, errQueryBoom
	}
	mclog.byInfo = func(string) (model.ResultSet, error) {
		return model.ResultSet{
			Columns: []string{"ID"},
			Rows:    []model.Row{{"ID": int64(7)}},
		}, nil
	}

	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:  string(model.ModeTixlogOrigin),
		Value: "JDPI",
	})
	require.NoError(t, err)

	require.Len(t, res.Notices, 1)
	assert.Equal(t, "A consulta 'Resultados Principais em TIXLOG' falhou e foi ignorada.", res.Notices[0])
	// The failed block is present but empty; the healthy one survives.
	require.Len(t, res.Blocks, 2)
	assert.True(t, res.Blocks[0].Table.Empty())
	assert.False(t, res.Empty)
}

func TestSearchEmptyFlagOnlyWhenAllBlocksEmpty(t *testing.T) {
	repos, _, _, _, _ := newFakeRepos()
	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:  string(model.ModeMclogInfo),
		Value: "nada",
	})
	require.NoError(t, err)
	assert.True(t, res.Empty)
}

func TestSearchControlListFanOutDeduplicates(t *testing.T) {
	repos, tixlog, mclog, _, _ := newFakeRepos()

	tixlog.byControlNumbers = func(controlNumbers []string) (model.ResultSet, error) {
		assert.Equal(t, []string{"E1", "E2"}, controlNumbers)
		return model.ResultSet{
			Columns: []string{"ID"},
			Rows:    []model.Row{{"ID": int64(1)}},
		}, nil
	}
	// Both lookups return the shared row 100; only one copy may survive.
	mclog.byInfo = func(term string) (model.ResultSet, error) {
		rows := []model.Row{{"ID": int64(100), "OUTRAS_INFO": "shared"}}
		if term == "E2" {
			rows = append(rows, model.Row{"ID": int64(200), "OUTRAS_INFO": "only E2"})
		}
		return model.ResultSet{Columns: []string{"ID", "OUTRAS_INFO"}, Rows: rows}, nil
	}

	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:   string(model.ModeTixlogControlList),
		Values: []string{" E1 ", "", "E2"},
	})
	require.NoError(t, err)

	require.Len(t, res.Blocks, 2)
	merged := res.Blocks[1].Table
	require.Len(t, merged.Rows, 2)
	assert.Equal(t, int64(100), merged.Rows[0]["ID"])
	assert.Equal(t, int64(200), merged.Rows[1]["ID"])
}

func TestSearchControlListAcceptsNewlineSeparatedValue(t *testing.T) {
	repos, tixlog, _, _, _ := newFakeRepos()

	var got []string
	tixlog.byControlNumbers = func(controlNumbers []string) (model.ResultSet, error) {
		got = controlNumbers
		return model.ResultSet{}, nil
	}

	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:  string(model.ModeTixlogControlList),
		Value: "E1\n\n  E2  \nE3",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"E1", "E2", "E3"}, got)
}

func TestSearchKytModeAttachesDecision(t *testing.T) {
	repos, _, _, _, cct := newFakeRepos()
	cct.byKytID = func(kytID string) (model.ResultSet, error) {
		assert.Equal(t, "kyt-1", kytID)
		return model.ResultSet{
			Columns: []string{"ID", "OUTRAS_INFO"},
			Rows:    []model.Row{{"ID": int64(1), "OUTRAS_INFO": `decisao = {"action":"DENY"}`}},
		}, nil
	}

	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:  string(model.ModeMclogCctKytID),
		Value: "kyt-1",
	})
	require.NoError(t, err)

	require.Len(t, res.Blocks, 1)
	require.NotNil(t, res.Blocks[0].Kyt)
	assert.Equal(t, "DENY", res.Blocks[0].Kyt.Action)
}

func TestSearchMix100ModeAttachesSettlement(t *testing.T) {
	repos, _, _, mix100, _ := newFakeRepos()
	mix100.byReturnEndToEnd = func(endToEndID string) (model.ResultSet, error) {
		return model.ResultSet{
			Columns: []string{"ID", "STATUS_MENSAGEM"},
			Rows:    []model.Row{{"ID": int64(1), "STATUS_MENSAGEM": "L"}},
		}, nil
	}

	svc := NewSearchService(&fakeProvider{repos: repos}, mapper.NewResultMapper(), nopLogger{})

	res, err := svc.Search(context.Background(), &dto.SearchRequest{
		Mode:  string(model.ModeMix100ReturnEndToEnd),
		Value: "D123",
	})
	require.NoError(t, err)

	require.Len(t, res.Blocks, 1)
	require.NotNil(t, res.Blocks[0].Settlement)
	assert.Equal(t, "Liquidado", res.Blocks[0].Settlement.Description)
}
