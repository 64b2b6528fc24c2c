package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/ftahirops/aegis/model"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "AEGIS_CONFIG"

// Config holds startup settings. It is read once and never written back.
type Config struct {
	UI  UIConfig  `mapstructure:"ui" yaml:"ui"`
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	BarPolicy    string `mapstructure:"bar_policy" yaml:"bar_policy"`
	Placeholders bool   `mapstructure:"placeholders" yaml:"placeholders"`
	Mouse        bool   `mapstructure:"mouse" yaml:"mouse"`
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		UI: UIConfig{
			BarPolicy:    model.BarPassthrough.String(),
			Placeholders: false,
			Mouse:        true,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// Path returns ~/.config/aegis/config.yaml (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "aegis", "config.yaml")
}

// Load reads configuration from file and env. An explicit path (argument or
// AEGIS_CONFIG) must exist; the default location is optional. Env overrides
// use the AEGIS_ prefix, e.g. AEGIS_UI_BAR_POLICY=clamp.
func Load(path string) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault("ui.bar_policy", def.UI.BarPolicy)
	v.SetDefault("ui.placeholders", def.UI.Placeholders)
	v.SetDefault("ui.mouse", def.UI.Mouse)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("AEGIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if p := Path(); p != "" {
		v.AddConfigPath(filepath.Dir(p))
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the program cannot honour.
func (c Config) Validate() error {
	if _, err := model.ParseBarPolicy(c.UI.BarPolicy); err != nil {
		return fmt.Errorf("ui.bar_policy: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// BarPolicy returns the parsed ui.bar_policy. Call after Validate.
func (c Config) BarPolicy() model.BarPolicy {
	p, _ := model.ParseBarPolicy(c.UI.BarPolicy)
	return p
}
