package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if !Default().Canvas.FollowEnabled() {
		t.Error("follow should default to enabled")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `canvas:
  highlightClear: 2s
  scrollMargin: 8
  follow: false
minimap:
  width: 30
  height: 12
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Canvas.HighlightClear.Std() != 2*time.Second {
		t.Errorf("highlightClear = %v, want 2s", cfg.Canvas.HighlightClear)
	}
	if cfg.Canvas.ScrollMargin != 8 {
		t.Errorf("scrollMargin = %d, want 8", cfg.Canvas.ScrollMargin)
	}
	if cfg.Canvas.FollowEnabled() {
		t.Error("follow should parse as disabled")
	}
	if cfg.Minimap.Width != 30 || cfg.Minimap.Height != 12 {
		t.Errorf("minimap = %dx%d, want 30x12", cfg.Minimap.Width, cfg.Minimap.Height)
	}
}

func TestLoadFromFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("canvas: ["), 0644)

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestMerge_OverlaysOnlySetFields(t *testing.T) {
	base := Default()
	overlay := &Config{}
	overlay.Canvas.ScrollMargin = 10

	base.Merge(overlay)

	if base.Canvas.ScrollMargin != 10 {
		t.Errorf("scrollMargin = %d, want 10", base.Canvas.ScrollMargin)
	}
	if base.Canvas.HighlightClear.Std() != 1500*time.Millisecond {
		t.Errorf("highlightClear = %v, unset overlay field must keep default", base.Canvas.HighlightClear)
	}
	if !base.Canvas.FollowEnabled() {
		t.Error("absent follow key must not flip the default")
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Minimap.Width = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for tiny minimap")
	}

	cfg = Default()
	cfg.Canvas.HighlightClear = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero highlight delay")
	}
}
