package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/examprep/internal/blueprint"
	"github.com/abhisek/examprep/internal/validate"
)

// EnvPrefix is prepended to every environment override, e.g.
// EXAMPREP_LOG_LEVEL for log.level.
const EnvPrefix = "EXAMPREP"

type Config struct {
	DB         string                `mapstructure:"db"`
	Exam       string                `mapstructure:"exam" validate:"required"`
	Log        LogConfig             `mapstructure:"log"`
	Select     SelectConfig          `mapstructure:"select"`
	Snapshots  SnapshotConfig        `mapstructure:"snapshots"`
	Blueprints []blueprint.Blueprint `mapstructure:"blueprints" validate:"dive"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type SelectConfig struct {
	Count int `mapstructure:"count" validate:"min=1,max=500"`

	// Seed fixes the selector's random source when non-zero.
	Seed uint64 `mapstructure:"seed"`
}

type SnapshotConfig struct {
	Keep int `mapstructure:"keep" validate:"min=1"`
}

// flagKeys maps config keys to the CLI flags that override them.
var flagKeys = map[string]string{
	"db":        "db",
	"exam":      "exam",
	"log.level": "log-level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("exam", blueprint.DefaultExam)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("select.count", 10)
	v.SetDefault("select.seed", 0)
	v.SetDefault("snapshots.keep", 5)
}

// Load resolves configuration from defaults, an optional YAML file,
// EXAMPREP_* environment variables and changed flags, in increasing
// order of precedence. An explicit path must exist; the default config
// file is optional.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir, err := DefaultDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RegisterBlueprints adds the configured blueprints to the registry.
// A configured blueprint replaces a built-in one with the same exam code.
func (c *Config) RegisterBlueprints() error {
	for _, b := range c.Blueprints {
		if err := blueprint.Register(b); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDir returns $XDG_CONFIG_HOME/examprep, falling back to
// ~/.config/examprep.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "examprep"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "examprep"), nil
}
