package store

import (
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/melon/pkg/planner"
)

// Load creates a Gateway backed by diskv using the provided config. A nil
// config falls back to LoadConfig.
func Load(cfg Config) (Gateway, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &gateway{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil }, // flat, one file per key
		CacheSizeMax: 1024 * 1024,                          // 1MB
	}), basePath: basePath}, nil
}

type gateway struct {
	d        *diskv.Diskv
	basePath string
}

func (g *gateway) Load(key Key) ([]byte, bool, error) {
	data, err := g.d.Read(string(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (g *gateway) Save(key Key, data []byte) error {
	return g.d.Write(string(key), data)
}

func (g *gateway) LoadTheme() planner.Theme {
	data, present, err := g.Load(KeyTheme)
	if err != nil || !present {
		return planner.ThemeLight
	}
	return planner.ParseTheme(string(data))
}

func (g *gateway) SaveTheme(theme planner.Theme) error {
	return g.Save(KeyTheme, []byte(theme))
}
