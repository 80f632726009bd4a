package platform

import (
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestDirFSExists(t *testing.T) {
	testFS := fstest.MapFS{
		"app/fonts":           &fstest.MapFile{Mode: fs.ModeDir},
		"app/fonts/Antic.ttf": &fstest.MapFile{Data: []byte("dummy")},
	}
	files := NewDirFS(testFS, "app")
	p := files.Join(files.AppRoot(), FontsFolder, "Antic.ttf")
	if p != "app/fonts/Antic.ttf" {
		t.Fatalf("unexpected joined path %q", p)
	}
	if !files.Exists(p) {
		t.Errorf("expected %s to exist", p)
	}
	if files.Exists("app/fonts") {
		t.Errorf("expected directory not to count as font file")
	}
	if files.Exists("app/fonts/Antic.otf") {
		t.Errorf("expected missing file not to exist")
	}
	if files.Exists("/abs/path.ttf") {
		t.Errorf("expected invalid path not to exist")
	}
}

func TestDirFSDefaultRoot(t *testing.T) {
	files := NewDirFS(fstest.MapFS{}, "")
	if files.AppRoot() != "." {
		t.Errorf("expected root '.', got %q", files.AppRoot())
	}
	if p := files.Join(files.AppRoot(), FontsFolder, "X.otf"); p != "fonts/X.otf" {
		t.Errorf("unexpected joined path %q", p)
	}
	if files.Assets()() == nil {
		t.Errorf("expected assets to be available")
	}
}

func TestDirFSAbsoluteRoot(t *testing.T) {
	testFS := fstest.MapFS{
		"app/fonts/Antic.otf": &fstest.MapFile{Data: []byte("dummy")},
	}
	for _, root := range []string{"/app", "/app/", "app/.", "//app"} {
		files := NewDirFS(testFS, root)
		if files.AppRoot() != "app" {
			t.Errorf("root %q: expected app root 'app', got %q", root, files.AppRoot())
		}
		if p := files.Join(files.AppRoot(), FontsFolder, "Antic.otf"); !files.Exists(p) {
			t.Errorf("root %q: expected %s to exist", root, p)
		}
	}
	files := DirFS{FS: testFS, Root: "/app"}
	if files.AppRoot() != "app" {
		t.Errorf("expected literal DirFS root to be cleaned, got %q", files.AppRoot())
	}
	if NewDirFS(testFS, "/").AppRoot() != "." {
		t.Errorf("expected '/' to name the file system root")
	}
}
