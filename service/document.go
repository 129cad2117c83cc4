package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/entity"
)

const (
	defaultListLimit = 10
	documentStatsTTL = 5 * time.Minute
	documentStatsKey = "drive:stats:documents:%s"
)

// DocumentStats aggregates an owner's document count and total byte size.
type DocumentStats struct {
	TotalCount int64 `json:"total_count"`
	TotalSize  int64 `json:"total_size"`
}

func (s *Service) GetDocumentByID(ctx context.Context, ownerID, documentID uuid.UUID) (*entity.Document, error) {
	document, err := s.documents.FindByID(ctx, ownerID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document: %w", err)
	}
	if document == nil {
		return nil, notFound("document does not exist")
	}
	return document, nil
}

// ListDocuments returns the documents directly inside one folder (nil =
// owner's root), sorted by name ascending.
func (s *Service) ListDocuments(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) ([]entity.Document, error) {
	if folderID != nil {
		folder, err := s.folders.FindByID(ctx, ownerID, *folderID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve folder: %w", err)
		}
		if folder == nil {
			return nil, notFound("folder does not exist")
		}
	}

	documents, err := s.documents.FindByFolder(ctx, ownerID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return documents, nil
}

// ListAllUserDocuments returns every document the owner has, most recently
// updated first.
func (s *Service) ListAllUserDocuments(ctx context.Context, ownerID uuid.UUID) ([]entity.Document, error) {
	documents, err := s.documents.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

func (s *Service) GetRecentDocuments(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.Document, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	documents, err := s.documents.FindRecent(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent documents: %w", err)
	}
	return documents, nil
}

func (s *Service) GetFavoriteDocuments(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.Document, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	documents, err := s.documents.FindFavorites(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite documents: %w", err)
	}
	return documents, nil
}

// GetDocumentStats returns the owner's document count and total size,
// served from the cache when fresh.
func (s *Service) GetDocumentStats(ctx context.Context, ownerID uuid.UUID) (*DocumentStats, error) {
	key := fmt.Sprintf(documentStatsKey, ownerID)

	var cached DocumentStats
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	count, size, err := s.documents.Stats(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute document stats: %w", err)
	}

	stats := &DocumentStats{TotalCount: count, TotalSize: size}
	if err := s.cache.Set(ctx, key, stats, documentStatsTTL); err != nil {
		s.logger.WarningWithContextf(ctx, "[Document] Failed to cache stats for owner %s: %v", ownerID, err)
	}

	return stats, nil
}

func (s *Service) invalidateDocumentStats(ctx context.Context, ownerID uuid.UUID) {
	key := fmt.Sprintf(documentStatsKey, ownerID)
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.WarningWithContextf(ctx, "[Document] Failed to invalidate stats cache for owner %s: %v", ownerID, err)
	}
}

func (s *Service) ToggleDocumentFavorite(ctx context.Context, ownerID, documentID uuid.UUID, isFavorite bool) (*entity.Document, error) {
	document, err := s.documents.FindByID(ctx, ownerID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document: %w", err)
	}
	if document == nil {
		return nil, notFound("document does not exist")
	}

	document.IsFavorite = isFavorite
	if err := s.documents.Update(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return document, nil
}

// MoveDocument relocates a document into another folder (nil = root). The
// destination must resolve under the same owner.
func (s *Service) MoveDocument(ctx context.Context, ownerID, documentID uuid.UUID, destFolderID *uuid.UUID) (*entity.Document, error) {
	document, err := s.documents.FindByID(ctx, ownerID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document: %w", err)
	}
	if document == nil {
		return nil, notFound("document does not exist")
	}

	if destFolderID != nil {
		dest, err := s.folders.FindByID(ctx, ownerID, *destFolderID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve destination folder: %w", err)
		}
		if dest == nil {
			return nil, notFound("destination folder does not exist")
		}
	}

	document.FolderID = destFolderID
	if err := s.documents.Update(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to move document: %w", err)
	}

	return document, nil
}

func (s *Service) UpdateDocumentName(ctx context.Context, ownerID, documentID uuid.UUID, newName string) (*entity.Document, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, invalid("document name is required")
	}

	document, err := s.documents.FindByID(ctx, ownerID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve document: %w", err)
	}
	if document == nil {
		return nil, notFound("document does not exist")
	}

	document.Name = newName
	if err := s.documents.Update(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to rename document: %w", err)
	}

	return document, nil
}
