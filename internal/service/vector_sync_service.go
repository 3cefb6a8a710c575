package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/pkg/pointid"
	"yoloeats-be/internal/repository/contract"
)

// IVectorSyncService keeps the vector index payload in step with the
// product catalog by consuming the in-process change events.
type IVectorSyncService interface {
	Consume(ctx context.Context) error
}

type vectorSyncService struct {
	pubSub     *gochannel.GoChannel
	vectorRepo contract.VectorRepository
}

func NewVectorSyncService(
	pubSub *gochannel.GoChannel,
	vectorRepo contract.VectorRepository,
) IVectorSyncService {
	return &vectorSyncService{
		pubSub:     pubSub,
		vectorRepo: vectorRepo,
	}
}

func (vs *vectorSyncService) Consume(ctx context.Context) error {
	updated, err := vs.pubSub.Subscribe(ctx, constant.TopicProductUpdated)
	if err != nil {
		return err
	}
	deleted, err := vs.pubSub.Subscribe(ctx, constant.TopicProductDeleted)
	if err != nil {
		return err
	}

	go func() {
		for msg := range updated {
			vs.processUpdated(ctx, msg)
		}
	}()
	go func() {
		for msg := range deleted {
			vs.processDeleted(ctx, msg)
		}
	}()

	return nil
}

// Every message is acked, success or not. The index payload re-converges
// on the next catalog write, and a point that does not exist yet stays
// missing until the embedding pipeline creates it; redelivery cannot fix
// either case.
func (vs *vectorSyncService) processUpdated(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.ProductUpdatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal product updated message: %v", err)
		return
	}

	pointID := pointid.FromProductID(payload.ProductId)
	if err := vs.vectorRepo.SetPointPayload(ctx, pointID, payload.Code, payload.LabelsTags); err != nil {
		log.Printf("[WARN] Failed to sync vector payload for product %s (point %s): %v", payload.ProductId, pointID, err)
		return
	}

	log.Printf("[INFO] Synced vector payload for product %s (point %s)", payload.ProductId, pointID)
}

func (vs *vectorSyncService) processDeleted(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.ProductDeletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal product deleted message: %v", err)
		return
	}

	pointID := pointid.FromProductID(payload.ProductId)
	if err := vs.vectorRepo.DeletePoints(ctx, []string{pointID}); err != nil {
		log.Printf("[WARN] Failed to delete vector point for product %s (point %s): %v", payload.ProductId, pointID, err)
		return
	}

	log.Printf("[INFO] Deleted vector point for product %s (point %s)", payload.ProductId, pointID)
}
