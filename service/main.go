package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/entity"
	"github.com/tnqbao/gau-drive-service/infra"
	"github.com/tnqbao/gau-drive-service/infra/produce"
)

// FolderStore is the persistence surface the folder half of the service
// needs. Every lookup is scoped by owner; lookups return (nil, nil) when
// nothing matches. Implemented by repository.FolderRepository.
type FolderStore interface {
	Create(ctx context.Context, folder *entity.Folder) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Folder, error)
	FindByNameAndParent(ctx context.Context, ownerID uuid.UUID, name string, parentID *uuid.UUID) (*entity.Folder, error)
	FindByParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID) ([]entity.Folder, error)
	FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]entity.Folder, error)
	CountByParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID) (int64, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Update(ctx context.Context, folder *entity.Folder) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// DocumentStore is the persistence surface for document metadata.
// Implemented by repository.DocumentRepository.
type DocumentStore interface {
	Create(ctx context.Context, document *entity.Document) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Document, error)
	FindByFolder(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) ([]entity.Document, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Document, error)
	FindRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.Document, error)
	FindFavorites(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.Document, error)
	CountByFolder(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) (int64, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (int64, int64, error)
	Update(ctx context.Context, document *entity.Document) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Cache is the stats cache surface. Implemented by infra.RedisClient.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// CleanupPublisher hands orphaned storage objects to the background worker.
// Implemented by produce.CleanupService.
type CleanupPublisher interface {
	PublishStorageCleanup(ctx context.Context, msg produce.StorageCleanupMessage) error
}

// Service validates and executes every folder/document operation and drives
// the presigned-upload lifecycle. All collaborators are injected once at
// construction; the service holds no other state.
type Service struct {
	folders       FolderStore
	documents     DocumentStore
	storage       infra.StorageGateway
	cache         Cache
	cleanup       CleanupPublisher
	logger        *infra.LoggerClient
	presignExpire time.Duration
}

func New(
	folders FolderStore,
	documents DocumentStore,
	storage infra.StorageGateway,
	cache Cache,
	cleanup CleanupPublisher,
	logger *infra.LoggerClient,
	presignExpire time.Duration,
) *Service {
	if presignExpire <= 0 {
		presignExpire = time.Hour
	}
	return &Service{
		folders:       folders,
		documents:     documents,
		storage:       storage,
		cache:         cache,
		cleanup:       cleanup,
		logger:        logger,
		presignExpire: presignExpire,
	}
}
