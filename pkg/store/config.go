package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the planner's data directory.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data path from a .melon config file or the
// MELON_PATH environment variable, defaulting to ~/.melon.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.melon.db")
	viper.SetConfigName(".melon") // .yaml is implicit
	viper.SetEnvPrefix("MELON")
	viper.AutomaticEnv()

	if override := os.Getenv("MELON_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
