package bootstrap

import (
	"context"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"yoloeats-be/internal/config"
	"yoloeats-be/internal/controller"
	"yoloeats-be/internal/gateway"
	"yoloeats-be/internal/pkg/logger"
	"yoloeats-be/internal/repository/implementation"
	"yoloeats-be/internal/repository/memory"
	"yoloeats-be/internal/service"
	"yoloeats-be/pkg/events"
	pktNats "yoloeats-be/pkg/nats"
)

type CheckerContainer struct {
	// Controllers
	CheckController controller.ICheckController
}

func NewCheckerContainer(neo4jDriver neo4j.DriverWithContext, cfg *config.Config) *CheckerContainer {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Repositories & Gateways
	graphRepo := implementation.NewGraphRepository(neo4jDriver)
	snapshotRepo := memory.NewProfileSnapshotRepository()

	profileGateway := gateway.NewProfileGateway(cfg.Peers.UserProfileServiceURL)
	catalogGateway := gateway.NewCatalogGateway(cfg.Peers.ProductCatalogServiceURL)

	// 3. Snapshot eviction
	// Without NATS the checker still answers; snapshots just age out on
	// TTL instead of being dropped on profile change.
	natsSub, err := pktNats.NewSubscriber(cfg.Nats.URL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}
	if natsSub != nil {
		err := natsSub.Subscribe(events.SubjectProfileUpdated, "allergy-checker-snapshots",
			func(ctx context.Context, event events.Event) error {
				userID := events.UserID(event)
				if userID == "" {
					return nil
				}
				snapshotRepo.Delete(userID)
				return nil
			})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to profile events: %v", err)
		}
	}

	// 4. Services
	safetyService := service.NewSafetyService(profileGateway, catalogGateway, graphRepo, snapshotRepo, sysLogger)

	// 5. Controllers
	return &CheckerContainer{
		CheckController: controller.NewCheckController(safetyService),
	}
}
