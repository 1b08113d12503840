package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/apiconnect/validation"
)

// Settings is implemented by config structs that carry defaults and
// their own validation. Load invokes both after unmarshalling.
type Settings interface {
	ApplyDefaults()
	Validate() error
}

// Options holds optional file overrides for Load.
type Options struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is used
	// if present.
	EnvFile string
}

// Option is a functional option for Load.
type Option func(*Options)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(o *Options) { o.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *Options) { o.EnvFile = path }
}

// Load populates cfg for the named application. It reads a YAML config
// file when one is found, overlays environment variables (dots in keys
// become underscores), loads a .env file when present, validates
// `validate` struct tags, and finally runs ApplyDefaults/Validate when
// cfg implements Settings.
func Load(name string, cfg any, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	configFile := o.ConfigFile
	if configFile == "" {
		configFile = findConfigFile(name)
	}

	envFile := o.EnvFile
	if envFile == "" && exists(".env") {
		envFile = ".env"
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for %s: %w", name, err)
	}

	if s, ok := cfg.(Settings); ok {
		s.ApplyDefaults()
	}
	if err := validation.Validate(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if s, ok := cfg.(Settings); ok {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// findConfigFile searches standard locations for a config file.
func findConfigFile(name string) string {
	searchPaths := []string{
		fmt.Sprintf("./%s.yml", name),
		fmt.Sprintf("./config/%s.yml", name),
		"./config.yml",
		"./config/config.yml",
	}
	for _, path := range searchPaths {
		if exists(path) {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
