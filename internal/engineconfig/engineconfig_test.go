package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "engine.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != Default() {
		t.Fatalf("Load = %+v; want %+v", p, Default())
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.json")
	want := Default()
	want.ShowFPS = true
	want.WindowWidth, want.WindowHeight = 1280, 720
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("Load = %+v; want %+v", got, want)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{"show_orientation": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.ShowOrientation || got.TargetFPS != 60 || got.MaxTextureSize != 4096 {
		t.Fatalf("Load = %+v", got)
	}
}

func TestInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err == nil {
		t.Fatalf("Load: want error")
	}
	if got != Default() {
		t.Fatalf("Load = %+v; want defaults", got)
	}
}
