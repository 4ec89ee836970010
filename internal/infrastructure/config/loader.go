package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	tuningFile = "tuning.toml"
	levelsDir  = "levels"
)

// Loader loads tuning and level files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadTuning loads tuning.toml on top of DefaultTuning.
// Keys missing from the file keep their default value.
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, tuningFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", tuningFile, err)
	}

	cfg := DefaultTuning()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tuningFile, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Printf("%s: ignoring unknown keys %v", path.Join(l.basePath, tuningFile), undecoded)
	}

	return &cfg, nil
}

// LoadLevel loads a level JSON file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := levelsDir + "/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	return &cfg, nil
}

// LevelNames lists the level files, sorted, without extension.
// A missing levels directory yields an empty list.
func (l *Loader) LevelNames() ([]string, error) {
	matches, err := fs.Glob(l.fsys, levelsDir+"/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevels loads every level file in name order
func (l *Loader) LoadLevels() ([]*LevelConfig, error) {
	names, err := l.LevelNames()
	if err != nil {
		return nil, err
	}

	levels := make([]*LevelConfig, 0, len(names))
	for _, name := range names {
		cfg, err := l.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, cfg)
	}
	return levels, nil
}
