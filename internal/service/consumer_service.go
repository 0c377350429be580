package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"mobile-order-be/internal/pkg/logger"
	"mobile-order-be/internal/repository/specification"
	"mobile-order-be/internal/repository/unitofwork"
	"mobile-order-be/pkg/embedding"
)

// menuEmbedPayload is the message body on the in-process embedding topic.
type menuEmbedPayload struct {
	SKU string `json:"sku"`
}

type IConsumerService interface {
	Consume(ctx context.Context) error

	// EnqueueMissingEmbeddings publishes an embed job for every menu item
	// that has no vector yet, typically right after seeding.
	EnqueueMissingEmbeddings(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	orderTopic        string
	embedTopic        string
	uowFactory        unitofwork.RepositoryFactory
	behaviors         IBehaviorService
	embeddingProvider embedding.Provider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	orderTopic string,
	embedTopic string,
	uowFactory unitofwork.RepositoryFactory,
	behaviors IBehaviorService,
	embeddingProvider embedding.Provider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		orderTopic:        orderTopic,
		embedTopic:        embedTopic,
		uowFactory:        uowFactory,
		behaviors:         behaviors,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	orderMessages, err := cs.pubSub.Subscribe(ctx, cs.orderTopic)
	if err != nil {
		return err
	}
	embedMessages, err := cs.pubSub.Subscribe(ctx, cs.embedTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range orderMessages {
			cs.processOrderMessage(ctx, msg)
		}
	}()
	go func() {
		for msg := range embedMessages {
			cs.processEmbedMessage(ctx, msg)
		}
	}()

	return nil
}

// processOrderMessage drops the buyer's cached profile so the next request
// rebuilds it with the new order included.
func (cs *consumerService) processOrderMessage(ctx context.Context, msg *message.Message) {
	var payload orderPlacedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "invalid order message, dropping", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.behaviors.Invalidate(ctx, payload.UserID)
	cs.logger.Info("consumer", "profile invalidated after order", map[string]interface{}{
		"order_id": payload.OrderID,
		"user_id":  payload.UserID,
	})
	msg.Ack()
}

func (cs *consumerService) processEmbedMessage(ctx context.Context, msg *message.Message) {
	var payload menuEmbedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "invalid embed message, dropping", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	if cs.embeddingProvider == nil {
		// No provider configured; retrieval runs in fallback mode.
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.MenuItemRepository().FindOne(ctx, specification.BySKU{SKU: payload.SKU})
	if err != nil {
		cs.logger.Error("consumer", "failed to load menu item for embedding", map[string]interface{}{
			"sku":   payload.SKU,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}
	if item == nil {
		cs.logger.Warn("consumer", "menu item vanished before embedding", map[string]interface{}{
			"sku": payload.SKU,
		})
		msg.Ack()
		return
	}

	document := fmt.Sprintf("%s (%s): %s. Tags: %s",
		item.Name, item.Category, item.Description, strings.Join(item.Tags, ", "))

	res, err := cs.embeddingProvider.Generate(ctx, document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		cs.logger.Error("consumer", "embedding generation failed", map[string]interface{}{
			"sku":   payload.SKU,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	if err := uow.MenuItemRepository().UpdateEmbedding(ctx, item.SKU, res.Values); err != nil {
		cs.logger.Error("consumer", "failed to store embedding", map[string]interface{}{
			"sku":   payload.SKU,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "menu item embedded", map[string]interface{}{
		"sku":        payload.SKU,
		"dimensions": len(res.Values),
	})
	msg.Ack()
}

func (cs *consumerService) EnqueueMissingEmbeddings(ctx context.Context) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.MenuItemRepository().FindAll(ctx, specification.MissingEmbedding{})
	if err != nil {
		return err
	}

	publisher := NewPublisherService(cs.embedTopic, cs.pubSub)
	for _, item := range items {
		payload, err := json.Marshal(menuEmbedPayload{SKU: item.SKU})
		if err != nil {
			return err
		}
		if err := publisher.Publish(ctx, payload); err != nil {
			return err
		}
	}

	if len(items) > 0 {
		cs.logger.Info("consumer", "queued menu items for embedding", map[string]interface{}{
			"count": len(items),
		})
	}
	return nil
}
