package service

import (
	"context"
	"errors"

	"pix-logview-be/internal/model"
	"pix-logview-be/internal/repository/unitofwork"
)

// Function-field fakes for the repository contracts. Unset fields
// return empty results, so each test only wires what it exercises.

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// recordingLogger captures error entries so tests can assert a failure
// was logged even when the response degraded gracefully.
type recordingLogger struct {
	nopLogger
	errorDetails []map[string]interface{}
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.errorDetails = append(l.errorDetails, details)
}

type fakeProvider struct {
	repos *unitofwork.Repositories
	err   error
}

func (p *fakeProvider) Ensure(ctx context.Context) (*unitofwork.Repositories, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.repos, nil
}

type fakeTixlogRepo struct {
	byControlNumber  func(string) (model.ResultSet, error)
	byJDPIRequestID  func(string) (model.ResultSet, error)
	byControlNumbers func([]string) (model.ResultSet, error)
	byJSONContent    func(string) (model.ResultSet, error)
	byOrigin         func(string) (model.ResultSet, error)
	entriesPerMinute func() ([]model.MinuteCount, error)
	summary          func(string) (*model.TransactionSummary, error)
	performance      func(model.PerformanceWindow) ([]model.PerformanceRow, error)
}

func (f *fakeTixlogRepo) FindByControlNumber(ctx context.Context, controlNumber string) (model.ResultSet, error) {
	if f.byControlNumber == nil {
		return model.ResultSet{}, nil
	}
	return f.byControlNumber(controlNumber)
}

func (f *fakeTixlogRepo) FindByJDPIRequestID(ctx context.Context, requestID string) (model.ResultSet, error) {
	if f.byJDPIRequestID == nil {
		return model.ResultSet{}, nil
	}
	return f.byJDPIRequestID(requestID)
}

func (f *fakeTixlogRepo) FindByControlNumbers(ctx context.Context, controlNumbers []string) (model.ResultSet, error) {
	if f.byControlNumbers == nil {
		return model.ResultSet{}, nil
	}
	return f.byControlNumbers(controlNumbers)
}

func (f *fakeTixlogRepo) FindByJSONContent(ctx context.Context, term string) (model.ResultSet, error) {
	if f.byJSONContent == nil {
		return model.ResultSet{}, nil
	}
	return f.byJSONContent(term)
}

func (f *fakeTixlogRepo) FindByOrigin(ctx context.Context, origin string) (model.ResultSet, error) {
	if f.byOrigin == nil {
		return model.ResultSet{}, nil
	}
	return f.byOrigin(origin)
}

func (f *fakeTixlogRepo) NewEntriesPerMinute(ctx context.Context) ([]model.MinuteCount, error) {
	if f.entriesPerMinute == nil {
		return nil, nil
	}
	return f.entriesPerMinute()
}

func (f *fakeTixlogRepo) TransactionSummary(ctx context.Context, controlNumber string) (*model.TransactionSummary, error) {
	if f.summary == nil {
		return nil, nil
	}
	return f.summary(controlNumber)
}

func (f *fakeTixlogRepo) PerformanceSummary(ctx context.Context, window model.PerformanceWindow) ([]model.PerformanceRow, error) {
	if f.performance == nil {
		return nil, nil
	}
	return f.performance(window)
}

type fakeMclogRepo struct {
	byInfo              func(string) (model.ResultSet, error)
	operationsPerMinute func(int) ([]model.FunctionMinuteCount, error)
	latestErrors        func() ([]model.OperationError, error)
}

func (f *fakeMclogRepo) FindByInfo(ctx context.Context, term string) (model.ResultSet, error) {
	if f.byInfo == nil {
		return model.ResultSet{}, nil
	}
	return f.byInfo(term)
}

func (f *fakeMclogRepo) OperationsPerMinute(ctx context.Context, hoursBack int) ([]model.FunctionMinuteCount, error) {
	if f.operationsPerMinute == nil {
		return nil, nil
	}
	return f.operationsPerMinute(hoursBack)
}

func (f *fakeMclogRepo) LatestErrors(ctx context.Context) ([]model.OperationError, error) {
	if f.latestErrors == nil {
		return nil, nil
	}
	return f.latestErrors()
}

type fakeMix100Repo struct {
	byControlNumber  func(string) (model.ResultSet, error)
	byReturnEndToEnd func(string) (model.ResultSet, error)
}

func (f *fakeMix100Repo) FindByControlNumber(ctx context.Context, controlNumber string) (model.ResultSet, error) {
	if f.byControlNumber == nil {
		return model.ResultSet{}, nil
	}
	return f.byControlNumber(controlNumber)
}

func (f *fakeMix100Repo) FindByReturnEndToEndID(ctx context.Context, endToEndID string) (model.ResultSet, error) {
	if f.byReturnEndToEnd == nil {
		return model.ResultSet{}, nil
	}
	return f.byReturnEndToEnd(endToEndID)
}

type fakeMclogCctRepo struct {
	byKytID func(string) (model.ResultSet, error)
}

func (f *fakeMclogCctRepo) FindByKytID(ctx context.Context, kytID string) (model.ResultSet, error) {
	if f.byKytID == nil {
		return model.ResultSet{}, nil
	}
	return f.byKytID(kytID)
}

func newFakeRepos() (*unitofwork.Repositories, *fakeTixlogRepo, *fakeMclogRepo, *fakeMix100Repo, *fakeMclogCctRepo) {
	tixlog := &fakeTixlogRepo{}
	mclog := &fakeMclogRepo{}
	mix100 := &fakeMix100Repo{}
	cct := &fakeMclogCctRepo{}
	return &unitofwork.Repositories{
		Tixlog:   tixlog,
		Mclog:    mclog,
		Mix100:   mix100,
		MclogCct: cct,
	}, tixlog, mclog, mix100, cct
}

var errQueryBoom = errors.New("query timeout")
