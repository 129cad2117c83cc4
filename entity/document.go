package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is the metadata row for one object in the storage gateway.
// StorageKey is 1:1 with the backing object and immutable once set.
type Document struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string     `json:"name" gorm:"type:varchar(512);not null"`
	IsFavorite bool       `json:"is_favorite" gorm:"not null;default:false"`
	StorageKey string     `json:"storage_key" gorm:"type:varchar(1024);not null;uniqueIndex"`
	MimeType   string     `json:"mime_type" gorm:"type:varchar(255)"`
	Size       int64      `json:"size" gorm:"not null"`
	OwnerID    uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index"`
	FolderID   *uuid.UUID `json:"folder_id" gorm:"type:uuid;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Folder *Folder `json:"folder,omitempty" gorm:"foreignKey:FolderID"`
}
