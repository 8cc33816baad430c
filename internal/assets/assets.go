// Package assets loads the game's sprites and sound effects. Sprites are
// small YAML character images; sounds are WAV files. Anything missing is
// logged and left nil so callers can draw a fallback.
package assets

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed files
var builtin embed.FS

// File names looked up in an assets directory.
const (
	FruitFile    = "fruit.yaml"
	LogoFile     = "logo.yaml"
	PauseFile    = "pause.yaml"
	PlayFile     = "play.yaml"
	EatSoundFile = "eat.wav"
)

// Set holds the loaded assets. Nil fields failed to load.
type Set struct {
	Fruit *core.Sprite
	Logo  *core.Sprite
	Pause *core.Sprite
	Play  *core.Sprite

	// EatSound is the raw WAV file played when food is eaten.
	EatSound []byte
}

// Builtin returns the assets compiled into the binary.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtin, "files")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads assets from dir, or the built-in set when dir is empty.
func Load(dir string, logger *log.Logger) *Set {
	if dir == "" {
		return LoadFS(Builtin(), logger)
	}
	return LoadFS(os.DirFS(dir), logger)
}

// LoadFS reads every asset from fsys. Missing or malformed files produce a
// warning and a nil field.
func LoadFS(fsys fs.FS, logger *log.Logger) *Set {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	set := &Set{
		Fruit: loadSprite(fsys, FruitFile, logger),
		Logo:  loadSprite(fsys, LogoFile, logger),
		Pause: loadSprite(fsys, PauseFile, logger),
		Play:  loadSprite(fsys, PlayFile, logger),
	}

	data, err := fs.ReadFile(fsys, EatSoundFile)
	if err != nil {
		logger.Warn("sound not found, playing silently", "file", EatSoundFile, "error", err)
	} else {
		set.EatSound = data
	}
	return set
}

func loadSprite(fsys fs.FS, name string, logger *log.Logger) *core.Sprite {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		logger.Warn("sprite not found, using fallback", "file", name, "error", err)
		return nil
	}
	sp, err := ParseSprite(data)
	if err != nil {
		logger.Warn("sprite is invalid, using fallback", "file", name, "error", err)
		return nil
	}
	return sp
}

// yamlSprite is the on-disk sprite format.
type yamlSprite struct {
	Name string   `yaml:"name"`
	Fg   string   `yaml:"fg"`
	Bg   string   `yaml:"bg,omitempty"`
	Rows []string `yaml:"rows"`
}

// ParseSprite decodes a YAML sprite. Colors default to the terminal default.
func ParseSprite(data []byte) (*core.Sprite, error) {
	var ys yamlSprite
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("assets: yaml unmarshal: %w", err)
	}
	if len(ys.Rows) == 0 {
		return nil, fmt.Errorf("assets: sprite %q has no rows", ys.Name)
	}

	sp := &core.Sprite{Rows: ys.Rows}
	var err error
	if ys.Fg != "" {
		if sp.Fg, err = core.ParseColor(ys.Fg); err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", ys.Name, err)
		}
	}
	if ys.Bg != "" {
		if sp.Bg, err = core.ParseColor(ys.Bg); err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", ys.Name, err)
		}
	}
	return sp, nil
}
