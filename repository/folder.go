package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/entity"
	"gorm.io/gorm"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

// FindByID returns (nil, nil) when no folder matches; ownership is part of
// the lookup so a foreign id is indistinguishable from a missing one.
func (r *FolderRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Folder, error) {
	var folder entity.Folder
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepository) FindByNameAndParent(ctx context.Context, ownerID uuid.UUID, name string, parentID *uuid.UUID) (*entity.Folder, error) {
	var folder entity.Folder
	query := r.db.WithContext(ctx).Where("owner_id = ? AND name = ?", ownerID, name)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	err := query.First(&folder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepository) FindByParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID) ([]entity.Folder, error) {
	var folders []entity.Folder
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	err := query.Order("name ASC").Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepository) FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]entity.Folder, error) {
	var folders []entity.Folder
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Order("name ASC").
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepository) CountByParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Folder{}).Where("owner_id = ?", ownerID)
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *FolderRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Folder{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

func (r *FolderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	return r.db.WithContext(ctx).Save(folder).Error
}

func (r *FolderRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Folder{}, "id = ? AND owner_id = ?", id, ownerID).Error
}
