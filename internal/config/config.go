package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the config file looked up in the working directory
// when no --config flag is given.
const DefaultPath = "cardforge.toml"

// Config represents the application configuration
type Config struct {
	CSVPath   string `toml:"csv_path"`
	CardType  string `toml:"card_type"`
	OutputDir string `toml:"output_dir"`
	Fonts     Fonts  `toml:"fonts"`
	Frames    Frames `toml:"frames"`
}

// Fonts holds the two font files: the regular cut doubles as the bold
// face, the italic cut as the italic face.
type Fonts struct {
	Regular string `toml:"regular"`
	Italic  string `toml:"italic"`
}

// Frames maps each card type to its background frame image.
type Frames struct {
	MagicalItem string `toml:"magical_item"`
	MazeCard    string `toml:"maze_card"`
}

// Default returns the built-in configuration, matching the conventional
// workspace layout (data/, fonts/, frames/ and cards/ beside the binary).
func Default() *Config {
	return &Config{
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
}

// Load decodes the config file over the defaults. An empty path means
// DefaultPath, and it is fine for that file to be absent; an explicitly
// given path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %v", path, err)
	}

	return cfg, nil
}
