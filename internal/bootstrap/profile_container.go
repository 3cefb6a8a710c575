package bootstrap

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"yoloeats-be/internal/config"
	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/controller"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/pkg/cachestore"
	"yoloeats-be/internal/pkg/logger"
	"yoloeats-be/internal/repository/implementation"
	"yoloeats-be/internal/service"
	"yoloeats-be/pkg/database"
	pktNats "yoloeats-be/pkg/nats"
)

type ProfileContainer struct {
	// Controllers
	ProfileController controller.IProfileController
}

func NewProfileContainer(mongoClient *mongo.Client, cfg *config.Config) *ProfileContainer {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Infrastructure
	// Redis is advisory: without it every read goes to Mongo.
	rdb, err := database.NewRedisClient(context.Background(), database.RedisConfig{URL: cfg.Redis.URL})
	if err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// NATS carries profile-updated events to the checker; profile updates
	// still work without it.
	natsPub, err := pktNats.NewPublisher(cfg.Nats.URL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Repositories
	db := mongoClient.Database(cfg.Mongo.ProfileDatabase)
	profileRepo := implementation.NewProfileRepository(db)
	cacheRepo := implementation.NewCacheRepository(rdb)

	profileCache := cachestore.New[entity.UserProfile](cacheRepo, sysLogger, "profile")
	referenceCache := cachestore.New[[]constant.AllergenInfo](cacheRepo, sysLogger, "allergen_list")

	// 4. Services
	profileService := service.NewProfileService(profileRepo, profileCache, referenceCache, natsPub, sysLogger)

	// 5. Controllers
	return &ProfileContainer{
		ProfileController: controller.NewProfileController(profileService),
	}
}
