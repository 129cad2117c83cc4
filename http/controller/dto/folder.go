package dto

import "github.com/google/uuid"

type CreateFolderRequest struct {
	Name     string     `json:"name" binding:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type MoveFolderRequest struct {
	DestinationParentID *uuid.UUID `json:"destination_parent_id"`
}

type RenameFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

type BatchGetFoldersRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}
