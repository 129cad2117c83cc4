package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/entity"
	"github.com/tnqbao/gau-drive-service/infra/produce"
	"gorm.io/gorm"
)

const rootKeyScope = "root"

// UploadTicket is the result of the first upload phase: a signed PUT URL the
// client uploads against, and the storage key it must echo back on confirm.
type UploadTicket struct {
	SignedURL  string `json:"signed_url"`
	StorageKey string `json:"storage_key"`
}

// GenerateUploadURL starts the upload lifecycle. No metadata row exists yet;
// an abandoned upload leaves at most an orphaned object in storage.
func (s *Service) GenerateUploadURL(ctx context.Context, ownerID uuid.UUID, filename, mimeType string, folderID *uuid.UUID) (*UploadTicket, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, invalid("filename is required")
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	if folderID != nil {
		folder, err := s.folders.FindByID(ctx, ownerID, *folderID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve folder: %w", err)
		}
		if folder == nil {
			return nil, notFound("folder does not exist")
		}
	}

	key := buildStorageKey(ownerID, folderID, filename)

	signedURL, err := s.storage.PresignUpload(ctx, key, mimeType, s.presignExpire)
	if err != nil {
		s.logger.ErrorWithContextf(ctx, err, "[Upload] Failed to presign upload for owner %s", ownerID)
		return nil, fmt.Errorf("failed to generate upload URL: %w", err)
	}

	return &UploadTicket{
		SignedURL:  signedURL,
		StorageKey: key,
	}, nil
}

// buildStorageKey scopes the object under owner and folder and makes it
// unique per request, so concurrent uploads of the same filename never
// collide.
func buildStorageKey(ownerID uuid.UUID, folderID *uuid.UUID, filename string) string {
	scope := rootKeyScope
	if folderID != nil {
		scope = folderID.String()
	}
	// path.Base strips any directory components a client smuggles in.
	return fmt.Sprintf("%s/%s/%s_%s", ownerID, scope, uuid.New(), path.Base(filename))
}

// ConfirmUpload completes the lifecycle: the client reports a finished
// upload and the metadata row is inserted. Object existence is taken on
// trust; verifying it would cost a gateway round trip per confirm.
func (s *Service) ConfirmUpload(ctx context.Context, ownerID uuid.UUID, storageKey, name, mimeType string, size int64, folderID *uuid.UUID) (*entity.Document, error) {
	if storageKey == "" {
		return nil, invalid("storage key is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("document name is required")
	}
	if mimeType == "" {
		return nil, invalid("mime type is required")
	}
	if size < 0 {
		return nil, invalid("size cannot be negative")
	}

	if folderID != nil {
		folder, err := s.folders.FindByID(ctx, ownerID, *folderID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve folder: %w", err)
		}
		if folder == nil {
			return nil, notFound("folder does not exist")
		}
	}

	document := &entity.Document{
		ID:         uuid.New(),
		Name:       name,
		StorageKey: storageKey,
		MimeType:   mimeType,
		Size:       size,
		OwnerID:    ownerID,
		FolderID:   folderID,
	}

	if err := s.documents.Create(ctx, document); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A duplicate confirm for the same storage key fails cleanly
			// instead of double-inserting.
			return nil, conflict("upload has already been confirmed")
		}

		// The object is already in storage with no metadata row pointing at
		// it; hand it to the reconciliation worker.
		s.publishCleanup(ctx, ownerID, storageKey, "confirm insert failed")
		return nil, fmt.Errorf("failed to save document metadata: %w", err)
	}

	s.invalidateDocumentStats(ctx, ownerID)

	return document, nil
}

// GenerateDownloadURL issues a signed GET URL for the document's backing
// object, hinting the original name for client-side saving.
func (s *Service) GenerateDownloadURL(ctx context.Context, ownerID, documentID uuid.UUID) (string, error) {
	document, err := s.documents.FindByID(ctx, ownerID, documentID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve document: %w", err)
	}
	if document == nil {
		return "", notFound("document does not exist")
	}

	signedURL, err := s.storage.PresignDownload(ctx, document.StorageKey, document.Name, s.presignExpire)
	if err != nil {
		s.logger.ErrorWithContextf(ctx, err, "[Upload] Failed to presign download for document %s", documentID)
		return "", fmt.Errorf("failed to generate download URL: %w", err)
	}

	return signedURL, nil
}

// DeleteDocument removes the backing object and then the metadata row. A
// storage failure does not abort the delete: an orphaned object is preferable
// to a zombie row the owner can never remove, so the key is queued for
// out-of-band cleanup instead.
func (s *Service) DeleteDocument(ctx context.Context, ownerID, documentID uuid.UUID) error {
	document, err := s.documents.FindByID(ctx, ownerID, documentID)
	if err != nil {
		return fmt.Errorf("failed to resolve document: %w", err)
	}
	if document == nil {
		return notFound("document does not exist")
	}

	if err := s.storage.DeleteObject(ctx, document.StorageKey); err != nil {
		s.logger.WarningWithContextf(ctx, "[Upload] Storage delete failed for key %s, queueing cleanup: %v", document.StorageKey, err)
		s.publishCleanup(ctx, ownerID, document.StorageKey, "live delete failed")
	}

	if err := s.documents.Delete(ctx, ownerID, documentID); err != nil {
		return fmt.Errorf("failed to delete document metadata: %w", err)
	}

	s.invalidateDocumentStats(ctx, ownerID)

	return nil
}

func (s *Service) publishCleanup(ctx context.Context, ownerID uuid.UUID, storageKey, reason string) {
	msg := produce.StorageCleanupMessage{
		StorageKey: storageKey,
		OwnerID:    ownerID.String(),
		Reason:     reason,
	}
	if err := s.cleanup.PublishStorageCleanup(ctx, msg); err != nil {
		s.logger.ErrorWithContextf(ctx, err, "[Upload] Failed to publish cleanup for key %s", storageKey)
	}
}
