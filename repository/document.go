package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/entity"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *DocumentRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Document, error) {
	var document entity.Document
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&document).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *DocumentRepository) FindByFolder(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) ([]entity.Document, error) {
	var documents []entity.Document
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if folderID == nil {
		query = query.Where("folder_id IS NULL")
	} else {
		query = query.Where("folder_id = ?", *folderID)
	}
	err := query.Order("name ASC").Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Document, error) {
	var documents []entity.Document
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) FindRecent(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.Document, error) {
	var documents []entity.Document
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) FindFavorites(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.Document, error) {
	var documents []entity.Document
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_favorite = ?", ownerID, true).
		Order("updated_at DESC").
		Limit(limit).
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) CountByFolder(ctx context.Context, ownerID uuid.UUID, folderID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Document{}).Where("owner_id = ?", ownerID)
	if folderID == nil {
		query = query.Where("folder_id IS NULL")
	} else {
		query = query.Where("folder_id = ?", *folderID)
	}
	err := query.Count(&count).Error
	return count, err
}

// Stats returns the owner's document count and total byte size in one query.
func (r *DocumentRepository) Stats(ctx context.Context, ownerID uuid.UUID) (int64, int64, error) {
	var result struct {
		TotalCount int64
		TotalSize  int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Document{}).
		Select("COUNT(*) AS total_count, COALESCE(SUM(size), 0) AS total_size").
		Where("owner_id = ?", ownerID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.TotalCount, result.TotalSize, nil
}

func (r *DocumentRepository) Update(ctx context.Context, document *entity.Document) error {
	return r.db.WithContext(ctx).Save(document).Error
}

func (r *DocumentRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.Document{}, "id = ? AND owner_id = ?", id, ownerID).Error
}
