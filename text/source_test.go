package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	if got := source.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
	if source.Path() != "" {
		t.Errorf("Path() = %q, want empty for in-memory data", source.Path())
	}
}

func TestNewFontSource_Empty(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSource_Garbage(t *testing.T) {
	if _, err := NewFontSource([]byte("definitely not a font")); err == nil {
		t.Error("NewFontSource(garbage) succeeded, want error")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile() error = %v", err)
	}
	if source.Path() != path {
		t.Errorf("Path() = %q, want %q", source.Path(), path)
	}

	if _, err := NewFontSourceFromCollection(path, 1); err == nil {
		t.Error("index 1 of a single-font file should be out of range")
	}
}

func TestNewFontSourceFromFile_Missing(t *testing.T) {
	_, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "arial.ttf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestFontSource_Face(t *testing.T) {
	source := Embedded(false)

	for _, size := range []float64{4, 14, 102} {
		face, err := source.Face(size)
		if err != nil {
			t.Fatalf("Face(%v) error = %v", size, err)
		}
		if face.Size() != size {
			t.Errorf("Size() = %v, want %v", face.Size(), size)
		}
		if !face.Scalable() {
			t.Error("outline face should be scalable")
		}
	}

	if _, err := source.Face(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Face(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestEmbedded(t *testing.T) {
	regular := Embedded(false)
	bold := Embedded(true)
	if regular.Name() != "Go" || bold.Name() != "Go" {
		t.Errorf("embedded names = %q, %q", regular.Name(), bold.Name())
	}

	rf, _ := regular.Face(40)
	bf, _ := bold.Face(40)
	if rf.Advance("Solar") >= bf.Advance("Solar") {
		t.Errorf("bold advance %d should exceed regular advance %d",
			bf.Advance("Solar"), rf.Advance("Solar"))
	}
}
