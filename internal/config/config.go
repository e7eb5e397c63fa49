package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	FileName = "fitlog"

	DefaultDataPath = "data/fitness_tracker.db"
	DefaultTimezone = "Local"
	DefaultLogLevel = "info"
	DefaultLogPath  = "data/fitlog.log"
)

type Config struct {
	Data     DataConfig `mapstructure:"data"`
	Timezone string     `mapstructure:"timezone"`
	Log      LogConfig  `mapstructure:"log"`
}

type DataConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// Path is the log file; empty writes to stderr.
	Path string `mapstructure:"path"`
}

// DefaultSearchPaths returns the working directory followed by the user's
// config directory, when one is known.
func DefaultSearchPaths() []string {
	paths := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(userConfigDir, FileName))
	}
	return paths
}

// LoadConfig reads fitlog.yaml from the first search path that has one. A
// missing file is not an error.
func LoadConfig(searchPaths ...string) (Config, error) {
	reader := viper.New()
	reader.SetConfigName(FileName)
	reader.SetConfigType("yaml")
	for _, path := range searchPaths {
		reader.AddConfigPath(path)
	}

	reader.SetDefault("data.path", DefaultDataPath)
	reader.SetDefault("timezone", DefaultTimezone)
	reader.SetDefault("log.level", DefaultLogLevel)
	reader.SetDefault("log.path", DefaultLogPath)

	if err := reader.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var config Config
	if err := reader.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	if config.Data.Path == "" {
		config.Data.Path = DefaultDataPath
	}
	return config, nil
}
