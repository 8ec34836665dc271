package main

import (
	"context"
	"log"

	"pix-logview-be/internal/bootstrap"
	"pix-logview-be/internal/config"
	"pix-logview-be/internal/server"
	"pix-logview-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	// The database connection is established lazily by the guardian on
	// the first request, so a misconfigured secret degrades to a 503
	// instead of preventing startup.
	container := bootstrap.NewContainer(cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	// Listen only returns on failure; flush the logger before the
	// fatal exit, which skips deferred calls.
	if err := srv.Run(); err != nil {
		_ = container.Logger.Sync()
		log.Fatal(err)
	}
}
