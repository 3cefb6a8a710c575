package main

import (
	"context"
	"log"

	"yoloeats-be/internal/bootstrap"
	"yoloeats-be/internal/config"
	"yoloeats-be/internal/server"
	"yoloeats-be/internal/tracer"
	"yoloeats-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer("allergy-checker-service")
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Knowledge Graph
	neo4jDriver, err := database.NewNeo4jDriver(context.Background(), database.Neo4jConfig{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		log.Panicf("Unable to connect to Neo4j: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewCheckerContainer(neo4jDriver, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, "Allergy Checker Service", cfg.App.CheckerPort, container.CheckController)

	// 5. Run Server
	log.Fatal(srv.Run())
}
