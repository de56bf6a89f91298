package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"text"`
	LogFile   string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	UI        UI     `yaml:"ui"`
}

type UI struct {
	NoColor  bool `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	HideHelp bool `yaml:"hide-help" env:"TICTACTOE_HIDE_HELP" env-default:"false"`
}

// Load reads the optional .env file, then the YAML file at path. A missing
// YAML file is not an error: values then come from the environment and
// defaults only.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// LogToStderr reports whether logs should go to stderr instead of a file.
func (that *Config) LogToStderr() bool {
	return that.LogFile == "" || that.LogFile == "-"
}
