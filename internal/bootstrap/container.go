package bootstrap

import (
	"time"

	"pix-logview-be/internal/config"
	"pix-logview-be/internal/controller"
	"pix-logview-be/internal/mapper"
	"pix-logview-be/internal/pkg/logger"
	"pix-logview-be/internal/repository/unitofwork"
	"pix-logview-be/internal/service"
	"pix-logview-be/pkg/database"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController controller.ISearchController
	StatsController  controller.IStatsController

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Database Session Guardian
	// Connection is lazy: a bad connection string surfaces as a 503 on
	// first use, not a startup crash.
	connector := func() (*gorm.DB, error) {
		return database.NewSQLServerDB(cfg.Database.Connection, database.PoolConfig{
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute,
		})
	}
	guardian := unitofwork.NewGuardian(connector, sysLogger)

	// 3. Services
	resultMapper := mapper.NewResultMapper()
	searchService := service.NewSearchService(guardian, resultMapper, sysLogger)
	statsService := service.NewStatsService(guardian, sysLogger)

	// 4. Controllers
	return &Container{
		SearchController: controller.NewSearchController(searchService),
		StatsController:  controller.NewStatsController(statsService),
		Logger:           sysLogger,
	}
}
