package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DriveExchange            = "drive.exchange"
	StorageCleanupQueue      = "drive.storage.cleanup"
	StorageCleanupRoutingKey = "drive.storage.cleanup"
)

// StorageCleanupMessage asks the background worker to remove an object the
// request path could not delete: either the metadata insert failed after the
// object was uploaded, or the live delete against the gateway failed.
type StorageCleanupMessage struct {
	StorageKey string `json:"storage_key"`
	OwnerID    string `json:"owner_id"`
	Reason     string `json:"reason"`
	Timestamp  int64  `json:"timestamp"`
}

// CleanupService handles publishing storage cleanup jobs
type CleanupService struct {
	channel *amqp.Channel
}

func InitCleanupService(channel *amqp.Channel) *CleanupService {
	service := &CleanupService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		DriveExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Drive exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		StorageCleanupQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Storage Cleanup queue: " + err.Error())
	}

	err = channel.QueueBind(
		StorageCleanupQueue,
		StorageCleanupRoutingKey,
		DriveExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Storage Cleanup queue: " + err.Error())
	}

	return service
}

// PublishStorageCleanup publishes a cleanup job for an orphaned storage object
func (s *CleanupService) PublishStorageCleanup(ctx context.Context, msg StorageCleanupMessage) error {
	msg.Timestamp = time.Now().Unix()

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		DriveExchange,
		StorageCleanupRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}
