package fs

import (
	"os"
	"path/filepath"
	"testing"

	"codegraph/internal/port"
)

var _ port.FileWalker = (*Walker)(nil)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalkCollectsRecognizedSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')\n")
	writeFile(t, root, "src/app.js", "console.log(1);\n")
	writeFile(t, root, "vendor/skip.js", "skip\n")
	writeFile(t, root, "README.md", "docs\n")

	w := NewWalker(nil, []string{"vendor/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(files), files)
	}
	if files[0].RelPath != "main.py" || files[0].Language != "python" {
		t.Errorf("file 0 = %+v", files[0])
	}
	if files[1].RelPath != "src/app.js" || files[1].Language != "javascript" {
		t.Errorf("file 1 = %+v", files[1])
	}
}

func TestWalkHonorsIncludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep.py", "x = 1\n")
	writeFile(t, root, "drop.rb", "x = 1\n")

	files, err := NewWalker([]string{"**/*.py"}, nil).Walk(root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "keep.py" {
		t.Errorf("files = %+v, want only keep.py", files)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.py", "python"},
		{"a.tsx", "typescript"},
		{"a.H", "c"},
		{"a.cc", "cpp"},
		{"Main.java", "java"},
		{"a.rb", "ruby"},
		{"notes.txt", ""},
		{"Makefile", ""},
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.path); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestReadFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "f.py", "content\n")

	got, err := ReadFile(filepath.Join(root, "f.py"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "content\n" {
		t.Errorf("content = %q", got)
	}

	if _, err := ReadFile(filepath.Join(root, "missing.py")); err == nil {
		t.Error("err = nil for missing file")
	}
}
