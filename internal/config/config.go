package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmynk/quicksplit/internal/models"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Form    FormConfig    `mapstructure:"form"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency       string `mapstructure:"currency"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Locale         string `mapstructure:"locale"`
	DefaultMode    string `mapstructure:"default_mode"`
}

// FormConfig holds input limits.
type FormConfig struct {
	MaxParticipants int `mapstructure:"max_participants"`
}

// ExportConfig holds image export settings.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig holds logging settings. An empty File means logs go to stderr
// in batch mode and are discarded in the TUI.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// MetricsConfig holds the optional textfile path for metrics.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// Mode parses UI.DefaultMode.
func (c Config) Mode() (models.SplitMode, error) {
	return models.ParseSplitMode(c.UI.DefaultMode)
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "quicksplit")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "quicksplit")
}

// Load reads configuration from file and env. path overrides the config
// file location; when empty QUICKSPLIT_CONFIG is consulted, then the user
// config directory. A missing default file is not an error. Env var
// overrides use prefix QUICKSPLIT_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency", "INR")
	v.SetDefault("ui.currency_symbol", "")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.default_mode", "equal")
	v.SetDefault("form.max_participants", 50)
	v.SetDefault("export.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("metrics.textfile", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("QUICKSPLIT_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUICKSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.Mode(); err != nil {
		return Config{}, fmt.Errorf("ui.default_mode: %w", err)
	}
	if c.Form.MaxParticipants <= 0 {
		return Config{}, fmt.Errorf("form.max_participants must be positive, got %d", c.Form.MaxParticipants)
	}
	return c, nil
}
