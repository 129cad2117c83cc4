package entity

import (
	"time"

	"github.com/google/uuid"
)

// Folder is one node of an owner's folder tree. A nil ParentID means the
// folder sits at the owner's root.
type Folder struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_owner_parent_name"`
	OwnerID   uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_owner_parent_name"`
	ParentID  *uuid.UUID `json:"parent_id" gorm:"type:uuid;index;uniqueIndex:idx_owner_parent_name"`
	CreatedAt time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Parent *Folder `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
}
