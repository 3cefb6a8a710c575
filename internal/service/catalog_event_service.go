package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/dto"
)

// ICatalogEventService publishes product change events on the in-process
// bus so the vector payload sync worker can keep the index in step.
type ICatalogEventService interface {
	PublishProductUpdated(ctx context.Context, msg *dto.ProductUpdatedMessage) error
	PublishProductDeleted(ctx context.Context, msg *dto.ProductDeletedMessage) error
}

type catalogEventService struct {
	pubSub *gochannel.GoChannel
}

func NewCatalogEventService(pubSub *gochannel.GoChannel) ICatalogEventService {
	return &catalogEventService{
		pubSub: pubSub,
	}
}

func (s *catalogEventService) PublishProductUpdated(ctx context.Context, msg *dto.ProductUpdatedMessage) error {
	return s.publish(constant.TopicProductUpdated, msg)
}

func (s *catalogEventService) PublishProductDeleted(ctx context.Context, msg *dto.ProductDeletedMessage) error {
	return s.publish(constant.TopicProductDeleted, msg)
}

func (s *catalogEventService) publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), data))
}
