package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.mongodb.org/mongo-driver/mongo"

	"yoloeats-be/internal/config"
	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/controller"
	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/gateway"
	"yoloeats-be/internal/pkg/cachestore"
	"yoloeats-be/internal/pkg/logger"
	"yoloeats-be/internal/repository/implementation"
	"yoloeats-be/internal/service"
	"yoloeats-be/pkg/database"
)

type CatalogContainer struct {
	// Controllers
	ProductController controller.IProductController

	// Background Services (Exposed for main.go to run)
	VectorSyncService service.IVectorSyncService
}

func NewCatalogContainer(mongoClient *mongo.Client, cfg *config.Config) *CatalogContainer {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// Redis is advisory: without it every read goes to Mongo.
	rdb, err := database.NewRedisClient(context.Background(), database.RedisConfig{URL: cfg.Redis.URL})
	if err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Qdrant backs the recommendation pipeline; a bad client config is
	// not recoverable at runtime.
	qdrantClient, err := database.NewQdrantClient(database.QdrantConfig{
		Host: cfg.Qdrant.Host,
		Port: cfg.Qdrant.Port,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Qdrant client: %v", err)
	}

	// 3. Repositories
	db := mongoClient.Database(cfg.Mongo.CatalogDatabase)
	productRepo := implementation.NewProductRepository(db)
	cacheRepo := implementation.NewCacheRepository(rdb)
	vectorRepo := implementation.NewVectorRepository(qdrantClient, constant.QdrantCollectionName)

	productCache := cachestore.New[entity.Product](cacheRepo, sysLogger, "product")

	// 4. Gateways
	profileGateway := gateway.NewProfileGateway(cfg.Peers.UserProfileServiceURL)

	// 5. Services
	eventService := service.NewCatalogEventService(pubSub)
	productService := service.NewProductService(productRepo, productCache, eventService, sysLogger)
	recommendationService := service.NewRecommendationService(vectorRepo, productRepo, profileGateway, sysLogger)
	vectorSyncService := service.NewVectorSyncService(pubSub, vectorRepo)

	// 6. Controllers
	return &CatalogContainer{
		ProductController: controller.NewProductController(productService, recommendationService),

		VectorSyncService: vectorSyncService,
	}
}
