package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"linkbak/internal/model"

	"github.com/spf13/viper"
)

type Config struct {
	LogFile   string            `mapstructure:"log_file"`
	DBPath    string            `mapstructure:"db_path"`
	RsyncPath string            `mapstructure:"rsync_path"`
	LsPath    string            `mapstructure:"ls_path"`
	Jobs      []model.BackupJob `mapstructure:"jobs"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home dir: %w", err)
	}

	configDir := filepath.Join(home, ".linkbak")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetDefault("log_file", filepath.Join(configDir, "linkbak.log"))
	viper.SetDefault("db_path", filepath.Join(configDir, "linkbak.db"))
	viper.SetDefault("rsync_path", "rsync")
	viper.SetDefault("ls_path", "ls")

	viper.SetEnvPrefix("LINKBAK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
