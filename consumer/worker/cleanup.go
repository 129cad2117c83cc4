package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tnqbao/gau-drive-service/infra"
	"github.com/tnqbao/gau-drive-service/infra/produce"
)

// CleanupConsumer drains the storage cleanup queue and removes orphaned
// objects from the storage backend. Objects land here when the request path
// uploaded bytes it could not register, or failed a live delete.
type CleanupConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
}

func NewCleanupConsumer(channel *amqp.Channel, infra *infra.Infra) *CleanupConsumer {
	return &CleanupConsumer{
		channel: channel,
		infra:   infra,
	}
}

func (c *CleanupConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.StorageCleanupQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register storage cleanup consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Started listening for cleanup jobs on queue: %s", produce.StorageCleanupQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Cleanup Consumer] Channel closed")
					return
				}
				c.handleCleanup(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *CleanupConsumer) handleCleanup(ctx context.Context, msg amqp.Delivery) {
	var payload produce.StorageCleanupMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	if payload.StorageKey == "" {
		c.infra.Logger.WarningWithContextf(ctx, "[Cleanup Consumer] Dropping message with empty storage key (owner: %s, reason: %s)", payload.OwnerID, payload.Reason)
		_ = msg.Nack(false, false)
		return
	}

	maxRetries := 3
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = c.infra.Storage.DeleteObject(ctx, payload.StorageKey)
		if err == nil {
			c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Removed orphaned object %s (reason: %s)", payload.StorageKey, payload.Reason)
			_ = msg.Ack(false)
			return
		}

		c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Attempt %d/%d failed for %s: %v", attempt, maxRetries, payload.StorageKey, err)

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * 2 * time.Second)
		}
	}

	// After max retries, requeue so the object is not leaked.
	c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed after %d attempts, requeueing %s", maxRetries, payload.StorageKey)
	_ = msg.Nack(false, true)
}
