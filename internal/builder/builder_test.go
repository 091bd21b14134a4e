package builder

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWriteThenReadRoundTrip(t *testing.T) {
	svc := NewService(t.TempDir())

	doc := map[string]any{
		"navigation": map[string]any{"type": "refresh"},
		"screen":     map[string]any{"type": "screen_layout"},
	}
	if err := svc.WriteFile("meetic/onboarding/step1", doc); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := svc.ReadFile("meetic/onboarding/step1")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Fatalf("round trip mismatch:\ngot  %v\nwant %v", got, doc)
	}
}

func TestWritePrettyPrintsOnDisk(t *testing.T) {
	root := t.TempDir()
	svc := NewService(root)

	if err := svc.WriteFile("flow/doc", map[string]any{"a": 1, "b": []any{"x"}}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "flow", "doc.json"))
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	// Stored documents are hand-editable: indented, multi-line.
	if !strings.Contains(string(data), "\n  \"a\": 1") {
		t.Fatalf("expected indented JSON on disk, got %q", string(data))
	}
}

func TestReadMissingFile(t *testing.T) {
	svc := NewService(t.TempDir())
	_, err := svc.ReadFile("nope/missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteFile(t *testing.T) {
	root := t.TempDir()
	svc := NewService(root)
	if err := svc.WriteFile("flow/doc", map[string]any{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := svc.DeleteFile("flow/doc"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "flow", "doc.json")); !os.IsNotExist(err) {
		t.Fatal("file should be gone")
	}
	if err := svc.DeleteFile("flow/doc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete must be ErrNotFound, got %v", err)
	}
}

func TestFolderLifecycle(t *testing.T) {
	root := t.TempDir()
	svc := NewService(root)

	if err := svc.CreateFolder("meetic/new-flow"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.CreateFolder("meetic/new-flow"); !errors.Is(err, ErrExists) {
		t.Fatalf("recreate must be ErrExists, got %v", err)
	}

	if err := svc.WriteFile("meetic/new-flow/doc", map[string]any{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := svc.DeleteFolder("meetic/new-flow"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "meetic", "new-flow")); !os.IsNotExist(err) {
		t.Fatal("folder should be gone, contents included")
	}
	if err := svc.DeleteFolder("meetic/new-flow"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete must be ErrNotFound, got %v", err)
	}
}

func TestPathTraversalIsRejected(t *testing.T) {
	svc := NewService(t.TempDir())

	for _, path := range []string{"../outside", "a/../../outside", "/etc/passwd"} {
		if _, err := svc.ReadFile(path); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("read %q: expected ErrInvalidPath, got %v", path, err)
		}
		if err := svc.WriteFile(path, map[string]any{}); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("write %q: expected ErrInvalidPath, got %v", path, err)
		}
		if err := svc.DeleteFolder(path); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("delete folder %q: expected ErrInvalidPath, got %v", path, err)
		}
	}
}

func TestTreeListsFoldersAndStripsExtensions(t *testing.T) {
	root := t.TempDir()
	svc := NewService(root)
	if err := svc.WriteFile("meetic/onboarding/step1", map[string]any{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := svc.WriteFile("meetic/onboarding/step2", map[string]any{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	// Stray non-json files stay out of the tree.
	if err := os.WriteFile(filepath.Join(root, "meetic", "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	tree := svc.Tree()
	if len(tree) != 1 || tree[0].Type != "folder" || tree[0].Name != "meetic" {
		t.Fatalf("unexpected root level: %+v", tree)
	}
	onboarding := tree[0].Children
	if len(onboarding) != 1 || onboarding[0].Path != "meetic/onboarding" {
		t.Fatalf("unexpected brand level: %+v", onboarding)
	}
	files := onboarding[0].Children
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %+v", files)
	}
	if files[0].Name != "step1" || files[0].Path != "meetic/onboarding/step1" || files[0].Type != "file" {
		t.Fatalf("unexpected file entry: %+v", files[0])
	}
}

func TestTreeOnMissingRootIsEmpty(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "absent"))
	if tree := svc.Tree(); tree == nil || len(tree) != 0 {
		t.Fatalf("missing root must yield an empty tree, got %+v", tree)
	}
}
