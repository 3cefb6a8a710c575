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
	shutdownTracer := tracer.InitTracer("user-profile-service")
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Primary Store
	mongoClient, err := database.NewMongoClient(context.Background(), database.MongoConfig{URI: cfg.Mongo.URI})
	if err != nil {
		log.Panicf("Unable to connect to MongoDB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewProfileContainer(mongoClient, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, "User Profile Service", cfg.App.ProfilePort, container.ProfileController)

	// 5. Run Server
	log.Fatal(srv.Run())
}
