package dto

import "github.com/google/uuid"

type GenerateUploadURLRequest struct {
	Filename string     `json:"filename" binding:"required"`
	MimeType string     `json:"mime_type"`
	FolderID *uuid.UUID `json:"folder_id"`
}

type ConfirmUploadRequest struct {
	StorageKey string     `json:"storage_key" binding:"required"`
	Name       string     `json:"name" binding:"required"`
	MimeType   string     `json:"mime_type" binding:"required"`
	Size       int64      `json:"size"`
	FolderID   *uuid.UUID `json:"folder_id"`
}

type MoveDocumentRequest struct {
	DestinationFolderID *uuid.UUID `json:"destination_folder_id"`
}

type RenameDocumentRequest struct {
	Name string `json:"name" binding:"required"`
}

type ToggleFavoriteRequest struct {
	IsFavorite *bool `json:"is_favorite" binding:"required"`
}
