package repository

import (
	"github.com/tnqbao/gau-drive-service/infra"
)

type Repository struct {
	FolderRepo   *FolderRepository
	DocumentRepo *DocumentRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		FolderRepo:   NewFolderRepository(infra.Postgres.DB),
		DocumentRepo: NewDocumentRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("Repository not initialized. Call InitRepository() first.")
	}
	return repository
}
