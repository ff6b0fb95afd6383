package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	Display  Display `yaml:"display"`
}

type Display struct {
	DisableClear  bool   `yaml:"disable-clear" env:"OTHELLO_DISABLE_CLEAR"`
	CellSeparator string `yaml:"cell-separator" env-default:""`
	Glyphs        Glyphs `yaml:"glyphs"`
}

type Glyphs struct {
	Empty string `yaml:"empty" env-default:"・"`
	Black string `yaml:"black" env-default:"●"`
	White string `yaml:"white" env-default:"○"`
}

// MustLoad - load configuration from the yml file, falling back to defaults and environment when the file is absent.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
