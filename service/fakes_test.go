package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tnqbao/gau-drive-service/entity"
	"github.com/tnqbao/gau-drive-service/infra"
	"github.com/tnqbao/gau-drive-service/infra/produce"
	"gorm.io/gorm"
)

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// fakeFolderStore keeps folders in a map and mirrors the store contract:
// owner scoping on every lookup, (nil, nil) on miss, and
// gorm.ErrDuplicatedKey when a write lands on an existing sibling name.
type fakeFolderStore struct {
	folders map[uuid.UUID]*entity.Folder
}

func newFakeFolderStore() *fakeFolderStore {
	return &fakeFolderStore{folders: map[uuid.UUID]*entity.Folder{}}
}

func (f *fakeFolderStore) hasSibling(folder *entity.Folder) bool {
	for _, existing := range f.folders {
		if existing.ID == folder.ID {
			continue
		}
		if existing.OwnerID == folder.OwnerID && existing.Name == folder.Name && sameParent(existing.ParentID, folder.ParentID) {
			return true
		}
	}
	return false
}

func (f *fakeFolderStore) Create(_ context.Context, folder *entity.Folder) error {
	if f.hasSibling(folder) {
		return gorm.ErrDuplicatedKey
	}
	cp := *folder
	f.folders[folder.ID] = &cp
	return nil
}

func (f *fakeFolderStore) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Folder, error) {
	folder, ok := f.folders[id]
	if !ok || folder.OwnerID != ownerID {
		return nil, nil
	}
	cp := *folder
	return &cp, nil
}

func (f *fakeFolderStore) FindByNameAndParent(_ context.Context, ownerID uuid.UUID, name string, parentID *uuid.UUID) (*entity.Folder, error) {
	for _, folder := range f.folders {
		if folder.OwnerID == ownerID && folder.Name == name && sameParent(folder.ParentID, parentID) {
			cp := *folder
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeFolderStore) FindByParent(_ context.Context, ownerID uuid.UUID, parentID *uuid.UUID) ([]entity.Folder, error) {
	var out []entity.Folder
	for _, folder := range f.folders {
		if folder.OwnerID == ownerID && sameParent(folder.ParentID, parentID) {
			out = append(out, *folder)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeFolderStore) FindByIDs(_ context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]entity.Folder, error) {
	out := []entity.Folder{}
	for _, id := range ids {
		if folder, ok := f.folders[id]; ok && folder.OwnerID == ownerID {
			out = append(out, *folder)
		}
	}
	return out, nil
}

func (f *fakeFolderStore) CountByParent(_ context.Context, ownerID uuid.UUID, parentID *uuid.UUID) (int64, error) {
	var count int64
	for _, folder := range f.folders {
		if folder.OwnerID == ownerID && sameParent(folder.ParentID, parentID) {
			count++
		}
	}
	return count, nil
}

func (f *fakeFolderStore) CountByOwner(_ context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	for _, folder := range f.folders {
		if folder.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFolderStore) Update(_ context.Context, folder *entity.Folder) error {
	if f.hasSibling(folder) {
		return gorm.ErrDuplicatedKey
	}
	cp := *folder
	f.folders[folder.ID] = &cp
	return nil
}

func (f *fakeFolderStore) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	if folder, ok := f.folders[id]; ok && folder.OwnerID == ownerID {
		delete(f.folders, id)
	}
	return nil
}

// fakeDocumentStore mirrors the document store contract, with the storage
// key acting as the unique index. createErr forces the next Create to fail.
type fakeDocumentStore struct {
	documents map[uuid.UUID]*entity.Document
	createErr error
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{documents: map[uuid.UUID]*entity.Document{}}
}

func (f *fakeDocumentStore) Create(_ context.Context, document *entity.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.documents {
		if existing.StorageKey == document.StorageKey {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *document
	f.documents[document.ID] = &cp
	return nil
}

func (f *fakeDocumentStore) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entity.Document, error) {
	document, ok := f.documents[id]
	if !ok || document.OwnerID != ownerID {
		return nil, nil
	}
	cp := *document
	return &cp, nil
}

func (f *fakeDocumentStore) FindByFolder(_ context.Context, ownerID uuid.UUID, folderID *uuid.UUID) ([]entity.Document, error) {
	var out []entity.Document
	for _, document := range f.documents {
		if document.OwnerID == ownerID && sameParent(document.FolderID, folderID) {
			out = append(out, *document)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeDocumentStore) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]entity.Document, error) {
	var out []entity.Document
	for _, document := range f.documents {
		if document.OwnerID == ownerID {
			out = append(out, *document)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (f *fakeDocumentStore) FindRecent(_ context.Context, ownerID uuid.UUID, limit int) ([]entity.Document, error) {
	out, _ := f.FindByOwner(context.Background(), ownerID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeDocumentStore) FindFavorites(_ context.Context, ownerID uuid.UUID, limit int) ([]entity.Document, error) {
	var out []entity.Document
	for _, document := range f.documents {
		if document.OwnerID == ownerID && document.IsFavorite {
			out = append(out, *document)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeDocumentStore) CountByFolder(_ context.Context, ownerID uuid.UUID, folderID *uuid.UUID) (int64, error) {
	var count int64
	for _, document := range f.documents {
		if document.OwnerID == ownerID && sameParent(document.FolderID, folderID) {
			count++
		}
	}
	return count, nil
}

func (f *fakeDocumentStore) Stats(_ context.Context, ownerID uuid.UUID) (int64, int64, error) {
	var count, size int64
	for _, document := range f.documents {
		if document.OwnerID == ownerID {
			count++
			size += document.Size
		}
	}
	return count, size, nil
}

func (f *fakeDocumentStore) Update(_ context.Context, document *entity.Document) error {
	cp := *document
	f.documents[document.ID] = &cp
	return nil
}

func (f *fakeDocumentStore) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	if document, ok := f.documents[id]; ok && document.OwnerID == ownerID {
		delete(f.documents, id)
	}
	return nil
}

type fakeGateway struct {
	presignErr error
	deleteErr  error
	deleted    []string
}

func (f *fakeGateway) PresignUpload(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://storage.test/upload/" + key, nil
}

func (f *fakeGateway) PresignDownload(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://storage.test/download/" + key, nil
}

func (f *fakeGateway) DeleteObject(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeGateway) Health(_ context.Context) error {
	return nil
}

type fakeCache struct {
	data    map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = data
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := f.data[key]
	if !ok {
		return infra.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
		f.deleted = append(f.deleted, key)
	}
	return nil
}

type fakePublisher struct {
	published []produce.StorageCleanupMessage
}

func (f *fakePublisher) PublishStorageCleanup(_ context.Context, msg produce.StorageCleanupMessage) error {
	f.published = append(f.published, msg)
	return nil
}

type testEnv struct {
	svc       *Service
	folders   *fakeFolderStore
	documents *fakeDocumentStore
	storage   *fakeGateway
	cache     *fakeCache
	cleanup   *fakePublisher
}

func newTestEnv() *testEnv {
	env := &testEnv{
		folders:   newFakeFolderStore(),
		documents: newFakeDocumentStore(),
		storage:   &fakeGateway{},
		cache:     newFakeCache(),
		cleanup:   &fakePublisher{},
	}
	env.svc = New(env.folders, env.documents, env.storage, env.cache, env.cleanup, infra.NewNopLoggerClient(), time.Hour)
	return env
}

func (e *testEnv) mustCreateFolder(ownerID uuid.UUID, name string, parentID *uuid.UUID) *entity.Folder {
	folder, err := e.svc.CreateFolder(context.Background(), ownerID, name, parentID)
	if err != nil {
		panic("test fixture: " + err.Error())
	}
	return folder
}

func (e *testEnv) seedDocument(ownerID uuid.UUID, name string, size int64, folderID *uuid.UUID) *entity.Document {
	document := &entity.Document{
		ID:         uuid.New(),
		Name:       name,
		StorageKey: ownerID.String() + "/seed/" + uuid.NewString() + "_" + name,
		MimeType:   "application/octet-stream",
		Size:       size,
		OwnerID:    ownerID,
		FolderID:   folderID,
	}
	if err := e.documents.Create(context.Background(), document); err != nil {
		panic("test fixture: " + err.Error())
	}
	return document
}
