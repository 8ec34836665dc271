package unitofwork

import (
	"context"
	"sync"

	"pix-logview-be/internal/pkg/logger"
	"pix-logview-be/internal/repository/contract"
	"pix-logview-be/internal/repository/implementation"

	"gorm.io/gorm"
)

// Repositories is the set of table repositories bound to one live
// database handle. Built once per established connection.
type Repositories struct {
	Tixlog   contract.TixlogRepository
	Mclog    contract.MclogRepository
	Mix100   contract.Mix100Repository
	MclogCct contract.MclogCctRepository
}

// Connector establishes a database handle from the configured DSN.
type Connector func() (*gorm.DB, error)

// Prober checks liveness of an established handle.
type Prober func(ctx context.Context, db *gorm.DB) error

// Guardian owns the process-wide database session. Before handing out
// repositories it probes the current handle; a failed probe discards
// the stale handle and re-attempts establishment exactly once, so
// callers only ever see working repositories or a connectivity error.
type Guardian struct {
	mu      sync.Mutex
	connect Connector
	probe   Prober
	logger  logger.ILogger

	db    *gorm.DB
	repos *Repositories
}

func NewGuardian(connect Connector, log logger.ILogger) *Guardian {
	return &Guardian{
		connect: connect,
		probe:   defaultProbe,
		logger:  log,
	}
}

// defaultProbe issues the cheapest possible round-trip.
func defaultProbe(ctx context.Context, db *gorm.DB) error {
	var one int
	return db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}

// Ensure returns live repositories, connecting or reconnecting as
// needed. It never retries more than once per call.
func (g *Guardian) Ensure(ctx context.Context) (*Repositories, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.repos == nil {
		return g.establish()
	}

	if err := g.probe(ctx, g.db); err != nil {
		g.logger.Warn("Guardian", "Database connection lost, reconnecting", map[string]interface{}{
			"error": err.Error(),
		})
		g.discard()
		return g.establish()
	}

	return g.repos, nil
}

func (g *Guardian) establish() (*Repositories, error) {
	db, err := g.connect()
	if err != nil {
		g.logger.Error("Guardian", "Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
		g.discard()
		return nil, err
	}

	g.db = db
	g.repos = &Repositories{
		Tixlog:   implementation.NewTixlogRepository(db),
		Mclog:    implementation.NewMclogRepository(db),
		Mix100:   implementation.NewMix100Repository(db),
		MclogCct: implementation.NewMclogCctRepository(db),
	}
	g.logger.Info("Guardian", "Database connection established", nil)
	return g.repos, nil
}

func (g *Guardian) discard() {
	if g.db != nil {
		if sqlDB, err := g.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	g.db = nil
	g.repos = nil
}
