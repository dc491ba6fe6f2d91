package main

import (
	"context"
	"log"

	"construction-deepwiki-be/internal/bootstrap"
	"construction-deepwiki-be/internal/config"
	"construction-deepwiki-be/internal/server"
	"construction-deepwiki-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 3. Start Background Services
	log.Println("Background: Starting Ingest Worker...")
	if err := container.IngestService.Consume(context.Background()); err != nil {
		log.Panicf("Unable to start ingest worker: %v", err)
	}

	log.Println("Background: Starting Stream Service...")
	if err := container.StreamService.Start(context.Background()); err != nil {
		log.Panicf("Unable to start stream service: %v", err)
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
