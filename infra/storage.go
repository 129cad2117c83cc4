package infra

import (
	"context"
	"time"

	"github.com/tnqbao/gau-drive-service/config"
)

// StorageGateway issues time-limited capability URLs for direct client
// upload/download and removes objects. The service layer never streams bytes
// through this process.
type StorageGateway interface {
	// PresignUpload returns a signed PUT URL bound to the given key and
	// content type.
	PresignUpload(ctx context.Context, key, contentType string, expire time.Duration) (string, error)

	// PresignDownload returns a signed GET URL for the key. The filename is
	// passed as a content-disposition hint for client-side saving.
	PresignDownload(ctx context.Context, key, filename string, expire time.Duration) (string, error)

	// DeleteObject permanently removes the backing object.
	DeleteObject(ctx context.Context, key string) error

	// Health reports whether the gateway is reachable.
	Health(ctx context.Context) error
}

// InitStorageGateway selects the gateway implementation from config.
func InitStorageGateway(cfg *config.EnvConfig) StorageGateway {
	switch cfg.Storage.Driver {
	case "s3":
		return InitS3Client(cfg)
	default:
		return InitMinioClient(cfg)
	}
}
