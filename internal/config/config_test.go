package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	want := &Config{
		CSVPath:   filepath.Join("data", "artefakty.csv"),
		CardType:  "magical-items",
		OutputDir: "cards",
		Fonts: Fonts{
			Regular: filepath.Join("fonts", "montserrat.ttf"),
			Italic:  filepath.Join("fonts", "montserrat_italic.ttf"),
		},
		Frames: Frames{
			MagicalItem: filepath.Join("frames", "frame_magical_item.png"),
			MazeCard:    filepath.Join("frames", "frame_maze_card.png"),
		},
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardforge.toml")
	content := `csv_path = "other/items.csv"

[fonts]
italic = "other/italic.ttf"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CSVPath != "other/items.csv" {
		t.Errorf("CSVPath = %q, want the file's value", cfg.CSVPath)
	}
	if cfg.Fonts.Italic != "other/italic.ttf" {
		t.Errorf("Fonts.Italic = %q, want the file's value", cfg.Fonts.Italic)
	}

	// Keys absent from the file keep their defaults.
	if cfg.CardType != "magical-items" || cfg.OutputDir != "cards" {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
	if cfg.Fonts.Regular != filepath.Join("fonts", "montserrat.ttf") {
		t.Errorf("Fonts.Regular = %q, want the default", cfg.Fonts.Regular)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for an explicitly given missing config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardforge.toml")
	if err := os.WriteFile(path, []byte("csv_path = ["), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for a malformed config file")
	}
}
