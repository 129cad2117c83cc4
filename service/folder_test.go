package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestCreateFolderAtRoot(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	folder, err := env.svc.CreateFolder(context.Background(), ownerID, "  Reports  ", nil)
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	if folder.Name != "Reports" {
		t.Errorf("expected trimmed name %q, got %q", "Reports", folder.Name)
	}
	if folder.ParentID != nil {
		t.Errorf("expected root folder, got parent %v", folder.ParentID)
	}
	if folder.OwnerID != ownerID {
		t.Errorf("expected owner %s, got %s", ownerID, folder.OwnerID)
	}
}

func TestCreateFolderRejectsBadNames(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	if _, err := env.svc.CreateFolder(context.Background(), ownerID, "   ", nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("blank name: expected ErrInvalid, got %v", err)
	}

	long := strings.Repeat("a", 101)
	if _, err := env.svc.CreateFolder(context.Background(), ownerID, long, nil); !errors.Is(err, ErrInvalid) {
		t.Errorf("101-char name: expected ErrInvalid, got %v", err)
	}

	// Exactly 100 characters is still valid.
	if _, err := env.svc.CreateFolder(context.Background(), ownerID, strings.Repeat("a", 100), nil); err != nil {
		t.Errorf("100-char name: unexpected error %v", err)
	}
}

func TestCreateFolderMissingParent(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	if _, err := env.svc.CreateFolder(context.Background(), ownerID, "Docs", ptr(uuid.New())); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateFolderParentOwnedByAnotherUser(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()
	intruderID := uuid.New()

	parent := env.mustCreateFolder(ownerID, "Private", nil)

	if _, err := env.svc.CreateFolder(context.Background(), intruderID, "Sneaky", ptr(parent.ID)); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign parent, got %v", err)
	}
}

func TestCreateFolderDuplicateSibling(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	env.mustCreateFolder(ownerID, "Taxes", nil)

	if _, err := env.svc.CreateFolder(context.Background(), ownerID, "Taxes", nil); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate sibling: expected ErrConflict, got %v", err)
	}

	// Same name under a different parent is fine.
	other := env.mustCreateFolder(ownerID, "Archive", nil)
	if _, err := env.svc.CreateFolder(context.Background(), ownerID, "Taxes", ptr(other.ID)); err != nil {
		t.Errorf("same name under different parent: unexpected error %v", err)
	}

	// And a different owner can reuse the name at their own root.
	if _, err := env.svc.CreateFolder(context.Background(), uuid.New(), "Taxes", nil); err != nil {
		t.Errorf("same name for different owner: unexpected error %v", err)
	}
}

func TestListFolderContentSortedByName(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	env.mustCreateFolder(ownerID, "zeta", nil)
	env.mustCreateFolder(ownerID, "alpha", nil)
	env.mustCreateFolder(ownerID, "mid", nil)
	env.seedDocument(ownerID, "b.txt", 10, nil)
	env.seedDocument(ownerID, "a.txt", 10, nil)

	content, err := env.svc.ListFolderContent(context.Background(), ownerID, nil)
	if err != nil {
		t.Fatalf("ListFolderContent: %v", err)
	}

	gotFolders := []string{}
	for _, f := range content.Folders {
		gotFolders = append(gotFolders, f.Name)
	}
	wantFolders := []string{"alpha", "mid", "zeta"}
	if len(gotFolders) != len(wantFolders) {
		t.Fatalf("expected %d folders, got %d", len(wantFolders), len(gotFolders))
	}
	for i := range wantFolders {
		if gotFolders[i] != wantFolders[i] {
			t.Errorf("folder[%d]: expected %q, got %q", i, wantFolders[i], gotFolders[i])
		}
	}

	if len(content.Documents) != 2 || content.Documents[0].Name != "a.txt" || content.Documents[1].Name != "b.txt" {
		t.Errorf("expected documents [a.txt b.txt], got %v", content.Documents)
	}
}

func TestListFolderContentMissingFolder(t *testing.T) {
	env := newTestEnv()

	if _, err := env.svc.ListFolderContent(context.Background(), uuid.New(), ptr(uuid.New())); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteFolder(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	empty := env.mustCreateFolder(ownerID, "Empty", nil)
	if err := env.svc.DeleteFolder(context.Background(), ownerID, empty.ID); err != nil {
		t.Fatalf("delete empty folder: %v", err)
	}
	if _, err := env.svc.GetFolderByID(context.Background(), ownerID, empty.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted folder still resolves: %v", err)
	}
}

func TestDeleteFolderWithChildFolder(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	parent := env.mustCreateFolder(ownerID, "Parent", nil)
	env.mustCreateFolder(ownerID, "Child", ptr(parent.ID))

	if err := env.svc.DeleteFolder(context.Background(), ownerID, parent.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestDeleteFolderWithDocumentsOnly(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	folder := env.mustCreateFolder(ownerID, "Scans", nil)
	env.seedDocument(ownerID, "scan.pdf", 2048, ptr(folder.ID))

	if err := env.svc.DeleteFolder(context.Background(), ownerID, folder.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for folder holding documents, got %v", err)
	}
}

func TestMoveFolder(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	src := env.mustCreateFolder(ownerID, "Src", nil)
	dst := env.mustCreateFolder(ownerID, "Dst", nil)

	moved, err := env.svc.MoveFolder(context.Background(), ownerID, src.ID, ptr(dst.ID))
	if err != nil {
		t.Fatalf("MoveFolder: %v", err)
	}
	if moved.ParentID == nil || *moved.ParentID != dst.ID {
		t.Errorf("expected parent %s, got %v", dst.ID, moved.ParentID)
	}

	// And back to the root.
	moved, err = env.svc.MoveFolder(context.Background(), ownerID, src.ID, nil)
	if err != nil {
		t.Fatalf("MoveFolder to root: %v", err)
	}
	if moved.ParentID != nil {
		t.Errorf("expected nil parent after move to root, got %v", moved.ParentID)
	}
}

func TestMoveFolderIntoItself(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	folder := env.mustCreateFolder(ownerID, "Loop", nil)

	if _, err := env.svc.MoveFolder(context.Background(), ownerID, folder.ID, ptr(folder.ID)); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestMoveFolderIntoOwnSubtree(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	a := env.mustCreateFolder(ownerID, "a", nil)
	b := env.mustCreateFolder(ownerID, "b", ptr(a.ID))
	c := env.mustCreateFolder(ownerID, "c", ptr(b.ID))

	if _, err := env.svc.MoveFolder(context.Background(), ownerID, a.ID, ptr(c.ID)); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}

	// Moving a leaf upward stays legal.
	if _, err := env.svc.MoveFolder(context.Background(), ownerID, c.ID, ptr(a.ID)); err != nil {
		t.Errorf("leaf move: unexpected error %v", err)
	}
}

func TestMoveFolderDuplicateNameAtDestination(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	dst := env.mustCreateFolder(ownerID, "Dst", nil)
	env.mustCreateFolder(ownerID, "Same", ptr(dst.ID))
	src := env.mustCreateFolder(ownerID, "Same", nil)

	if _, err := env.svc.MoveFolder(context.Background(), ownerID, src.ID, ptr(dst.ID)); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestRenameFolder(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	folder := env.mustCreateFolder(ownerID, "Old", nil)

	renamed, err := env.svc.UpdateFolderName(context.Background(), ownerID, folder.ID, "New")
	if err != nil {
		t.Fatalf("UpdateFolderName: %v", err)
	}
	if renamed.Name != "New" {
		t.Errorf("expected name %q, got %q", "New", renamed.Name)
	}

	// Renaming to its current name is a no-op, not a conflict.
	if _, err := env.svc.UpdateFolderName(context.Background(), ownerID, folder.ID, "New"); err != nil {
		t.Errorf("rename to same name: unexpected error %v", err)
	}
}

func TestRenameFolderDuplicateSibling(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	env.mustCreateFolder(ownerID, "Taken", nil)
	folder := env.mustCreateFolder(ownerID, "Free", nil)

	if _, err := env.svc.UpdateFolderName(context.Background(), ownerID, folder.ID, "Taken"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestGetFolderStats(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	folder := env.mustCreateFolder(ownerID, "Stats", nil)
	env.mustCreateFolder(ownerID, "Sub1", ptr(folder.ID))
	env.mustCreateFolder(ownerID, "Sub2", ptr(folder.ID))
	env.seedDocument(ownerID, "one.txt", 1, ptr(folder.ID))

	stats, err := env.svc.GetFolderStats(context.Background(), ownerID, folder.ID)
	if err != nil {
		t.Fatalf("GetFolderStats: %v", err)
	}
	if stats.FolderCount != 2 || stats.FileCount != 1 {
		t.Errorf("expected 2 folders / 1 file, got %d / %d", stats.FolderCount, stats.FileCount)
	}
}

func TestGetTreeStats(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	root1 := env.mustCreateFolder(ownerID, "root1", nil)
	env.mustCreateFolder(ownerID, "root2", nil)
	env.mustCreateFolder(ownerID, "nested", ptr(root1.ID))
	env.seedDocument(ownerID, "a.txt", 5, nil)
	env.seedDocument(ownerID, "b.txt", 5, ptr(root1.ID))

	// Another owner's tree must not leak into the counts.
	env.mustCreateFolder(uuid.New(), "foreign", nil)

	stats, err := env.svc.GetTreeStats(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("GetTreeStats: %v", err)
	}
	if stats.TotalFolderCount != 3 {
		t.Errorf("expected 3 folders total, got %d", stats.TotalFolderCount)
	}
	if stats.RootFolderCount != 2 {
		t.Errorf("expected 2 root folders, got %d", stats.RootFolderCount)
	}
	if stats.TotalDocumentCount != 2 {
		t.Errorf("expected 2 documents, got %d", stats.TotalDocumentCount)
	}
}

func TestGetFoldersByIDs(t *testing.T) {
	env := newTestEnv()
	ownerID := uuid.New()

	mine := env.mustCreateFolder(ownerID, "Mine", nil)
	foreign := env.mustCreateFolder(uuid.New(), "Foreign", nil)

	folders, err := env.svc.GetFoldersByIDs(context.Background(), ownerID, []uuid.UUID{mine.ID, foreign.ID, uuid.New()})
	if err != nil {
		t.Fatalf("GetFoldersByIDs: %v", err)
	}
	if len(folders) != 1 || folders[0].ID != mine.ID {
		t.Errorf("expected only the owned folder, got %v", folders)
	}

	empty, err := env.svc.GetFoldersByIDs(context.Background(), ownerID, nil)
	if err != nil {
		t.Fatalf("GetFoldersByIDs with empty input: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty result, got %v", empty)
	}
}
