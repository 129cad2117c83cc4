package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/entity"
	"gorm.io/gorm"
)

const maxFolderNameLength = 100

// FolderContent is one directory level of an owner's tree: the child folders
// and the documents that sit directly in it, both sorted by name.
type FolderContent struct {
	Folders   []entity.Folder   `json:"folders"`
	Documents []entity.Document `json:"documents"`
}

// FolderStats describes one folder's direct children.
type FolderStats struct {
	FolderCount int64 `json:"folder_count"`
	FileCount   int64 `json:"file_count"`
}

// TreeStats aggregates an owner's entire tree.
type TreeStats struct {
	TotalFolderCount   int64 `json:"total_folder_count"`
	RootFolderCount    int64 `json:"root_folder_count"`
	TotalDocumentCount int64 `json:"total_document_count"`
}

// CreateFolder inserts a folder under the given parent (nil = owner's root).
// The name must be unique among siblings.
func (s *Service) CreateFolder(ctx context.Context, ownerID uuid.UUID, name string, parentID *uuid.UUID) (*entity.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("folder name is required")
	}
	if len(name) > maxFolderNameLength {
		return nil, invalid("folder name exceeds 100 characters")
	}

	if parentID != nil {
		parent, err := s.folders.FindByID(ctx, ownerID, *parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve parent folder: %w", err)
		}
		if parent == nil {
			return nil, notFound("parent folder does not exist")
		}
	}

	existing, err := s.folders.FindByNameAndParent(ctx, ownerID, name, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check sibling names: %w", err)
	}
	if existing != nil {
		return nil, conflict("a folder with this name already exists here")
	}

	folder := &entity.Folder{
		ID:       uuid.New(),
		Name:     name,
		OwnerID:  ownerID,
		ParentID: parentID,
	}

	if err := s.folders.Create(ctx, folder); err != nil {
		// The compound unique index is the backstop for the pre-check race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("a folder with this name already exists here")
		}
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return folder, nil
}

// ListFolderContent returns the folders and documents directly under
// parentID (nil = root), each sorted by name ascending.
func (s *Service) ListFolderContent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID) (*FolderContent, error) {
	if parentID != nil {
		parent, err := s.folders.FindByID(ctx, ownerID, *parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve folder: %w", err)
		}
		if parent == nil {
			return nil, notFound("folder does not exist")
		}
	}

	folders, err := s.folders.FindByParent(ctx, ownerID, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	documents, err := s.documents.FindByFolder(ctx, ownerID, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return &FolderContent{
		Folders:   folders,
		Documents: documents,
	}, nil
}

func (s *Service) GetFolderByID(ctx context.Context, ownerID, folderID uuid.UUID) (*entity.Folder, error) {
	folder, err := s.folders.FindByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder: %w", err)
	}
	if folder == nil {
		return nil, notFound("folder does not exist")
	}
	return folder, nil
}

// DeleteFolder removes an empty folder. A folder holding subfolders or
// documents cannot be deleted; there is no recursive delete.
func (s *Service) DeleteFolder(ctx context.Context, ownerID, folderID uuid.UUID) error {
	folder, err := s.folders.FindByID(ctx, ownerID, folderID)
	if err != nil {
		return fmt.Errorf("failed to resolve folder: %w", err)
	}
	if folder == nil {
		return notFound("folder does not exist")
	}

	childFolders, err := s.folders.CountByParent(ctx, ownerID, &folderID)
	if err != nil {
		return fmt.Errorf("failed to count child folders: %w", err)
	}
	if childFolders > 0 {
		return conflict("folder is not empty")
	}

	childDocuments, err := s.documents.CountByFolder(ctx, ownerID, &folderID)
	if err != nil {
		return fmt.Errorf("failed to count folder documents: %w", err)
	}
	if childDocuments > 0 {
		return conflict("folder is not empty")
	}

	if err := s.folders.Delete(ctx, ownerID, folderID); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	return nil
}

// MoveFolder reparents a folder. The destination must not be the folder
// itself or any folder inside its subtree.
func (s *Service) MoveFolder(ctx context.Context, ownerID, folderID uuid.UUID, destParentID *uuid.UUID) (*entity.Folder, error) {
	folder, err := s.folders.FindByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder: %w", err)
	}
	if folder == nil {
		return nil, notFound("folder does not exist")
	}

	if destParentID != nil {
		if *destParentID == folderID {
			return nil, invalid("folder cannot be its own parent")
		}

		dest, err := s.folders.FindByID(ctx, ownerID, *destParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve destination folder: %w", err)
		}
		if dest == nil {
			return nil, notFound("destination folder does not exist")
		}

		inSubtree, err := s.isDescendantOf(ctx, ownerID, *destParentID, folderID)
		if err != nil {
			return nil, err
		}
		if inSubtree {
			return nil, conflict("folder cannot be moved into its own subtree")
		}
	}

	folder.ParentID = destParentID
	if err := s.folders.Update(ctx, folder); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("a folder with this name already exists at the destination")
		}
		return nil, fmt.Errorf("failed to move folder: %w", err)
	}

	return folder, nil
}

// isDescendantOf walks the ancestor chain of candidate and reports whether
// ancestorID appears in it. The visited set guards against corrupted cycles
// already present in the stored tree.
func (s *Service) isDescendantOf(ctx context.Context, ownerID, candidateID, ancestorID uuid.UUID) (bool, error) {
	visited := map[uuid.UUID]bool{}
	current := candidateID

	for {
		if current == ancestorID {
			return true, nil
		}
		if visited[current] {
			return false, nil
		}
		visited[current] = true

		folder, err := s.folders.FindByID(ctx, ownerID, current)
		if err != nil {
			return false, fmt.Errorf("failed to walk ancestor chain: %w", err)
		}
		if folder == nil || folder.ParentID == nil {
			return false, nil
		}
		current = *folder.ParentID
	}
}

// UpdateFolderName renames a folder, keeping sibling names unique.
func (s *Service) UpdateFolderName(ctx context.Context, ownerID, folderID uuid.UUID, newName string) (*entity.Folder, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, invalid("folder name is required")
	}
	if len(newName) > maxFolderNameLength {
		return nil, invalid("folder name exceeds 100 characters")
	}

	folder, err := s.folders.FindByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder: %w", err)
	}
	if folder == nil {
		return nil, notFound("folder does not exist")
	}

	existing, err := s.folders.FindByNameAndParent(ctx, ownerID, newName, folder.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check sibling names: %w", err)
	}
	if existing != nil && existing.ID != folderID {
		return nil, conflict("a folder with this name already exists here")
	}

	folder.Name = newName
	if err := s.folders.Update(ctx, folder); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("a folder with this name already exists here")
		}
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}

	return folder, nil
}

// GetFolderStats reports one folder's direct child counts.
func (s *Service) GetFolderStats(ctx context.Context, ownerID, folderID uuid.UUID) (*FolderStats, error) {
	folder, err := s.folders.FindByID(ctx, ownerID, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder: %w", err)
	}
	if folder == nil {
		return nil, notFound("folder does not exist")
	}

	folderCount, err := s.folders.CountByParent(ctx, ownerID, &folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to count child folders: %w", err)
	}

	fileCount, err := s.documents.CountByFolder(ctx, ownerID, &folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to count folder documents: %w", err)
	}

	return &FolderStats{
		FolderCount: folderCount,
		FileCount:   fileCount,
	}, nil
}

// GetTreeStats aggregates counts over the owner's whole tree.
func (s *Service) GetTreeStats(ctx context.Context, ownerID uuid.UUID) (*TreeStats, error) {
	totalFolders, err := s.folders.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count folders: %w", err)
	}

	rootFolders, err := s.folders.CountByParent(ctx, ownerID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count root folders: %w", err)
	}

	totalDocuments, _, err := s.documents.Stats(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	return &TreeStats{
		TotalFolderCount:   totalFolders,
		RootFolderCount:    rootFolders,
		TotalDocumentCount: totalDocuments,
	}, nil
}

// GetFoldersByIDs bulk-resolves folders. Ids that do not resolve under this
// owner are silently omitted; an empty input yields an empty result.
func (s *Service) GetFoldersByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]entity.Folder, error) {
	if len(ids) == 0 {
		return []entity.Folder{}, nil
	}

	folders, err := s.folders.FindByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folders: %w", err)
	}

	return folders, nil
}
