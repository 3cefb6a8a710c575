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
	shutdownTracer := tracer.InitTracer("product-catalog-service")
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Primary Store
	mongoClient, err := database.NewMongoClient(context.Background(), database.MongoConfig{URI: cfg.Mongo.URI})
	if err != nil {
		log.Panicf("Unable to connect to MongoDB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewCatalogContainer(mongoClient, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Vector Sync Service...")
		if err := container.VectorSyncService.Consume(context.Background()); err != nil {
			log.Printf("Background Vector Sync Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, "Product Catalog Service", cfg.App.CatalogPort, container.ProductController)

	// 6. Run Server
	log.Fatal(srv.Run())
}
