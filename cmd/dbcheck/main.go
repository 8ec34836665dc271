package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"pix-logview-be/internal/config"
	"pix-logview-be/internal/constant"
	"pix-logview-be/pkg/database"

	"github.com/fatih/color"
)

// dbcheck verifies that the configured connection string can reach the
// log databases and that each inspected table answers a bounded probe.
// Meant for operators rolling out a new environment.
func main() {
	cfg := config.Load()

	fmt.Println("Checking database connectivity...")

	db, err := database.NewSQLServerDB(cfg.Database.Connection, database.PoolConfig{
		MaxIdleConns:    1,
		MaxOpenConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		color.Red("✗ connection failed: %v", err)
		os.Exit(1)
	}
	color.Green("✓ connected")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tables := []string{
		constant.TableTixlog,
		constant.TableMclogCad,
		constant.TableMix100,
		constant.TableMclogCct,
	}

	failed := false
	for _, table := range tables {
		var one int
		probe := fmt.Sprintf("SELECT TOP (1) 1 FROM %s WITH (NOLOCK)", table)
		if err := db.WithContext(ctx).Raw(probe).Scan(&one).Error; err != nil {
			color.Red("✗ %s: %v", table, err)
			failed = true
			continue
		}
		color.Green("✓ %s", table)
	}

	if failed {
		os.Exit(1)
	}
	color.Green("All checks passed.")
}
