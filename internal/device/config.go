package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "FLASHCARDS_"

// Mode selects where decks live.
const (
	ModeLocal = "local"
	ModeCloud = "cloud"
)

// Config is the device CLI configuration. Sources, lowest first: flag
// defaults, the YAML file, FLASHCARDS_* variables, explicitly set flags.
type Config struct {
	Mode       string        `koanf:"mode"        validate:"oneof=local cloud"`
	Server     string        `koanf:"server"      validate:"required_if=Mode cloud,omitempty,url"`
	DataDir    string        `koanf:"data-dir"    validate:"required"`
	CookieName string        `koanf:"cookie-name" validate:"required"`
	LogLevel   string        `koanf:"log-level"   validate:"oneof=debug info warn error"`
	Timeout    time.Duration `koanf:"timeout"     validate:"gt=0"`
}

// DBPath is the local SQLite file.
func (c *Config) DBPath() string { return filepath.Join(c.DataDir, "flashcards.db") }

// SessionPath is where the cloud session cookie is kept.
func (c *Config) SessionPath() string { return filepath.Join(c.DataDir, "session") }

// LoadConfig parses the global flags in args and returns the config with the
// remaining arguments, the command and its own arguments.
func LoadConfig(args []string) (*Config, []string, error) {
	fset := pflag.NewFlagSet("flashcards", pflag.ContinueOnError)
	fset.SetInterspersed(false)
	configPath := fset.String("config", "", "YAML config file")
	fset.String("mode", ModeLocal, "deck storage: local or cloud")
	fset.String("server", "http://localhost:8080", "cloud server base URL")
	fset.String("data-dir", defaultDataDir(), "directory for the local database and session")
	fset.String("cookie-name", "session", "session cookie name used by the server")
	fset.String("log-level", "warn", "log level: debug, info, warn or error")
	fset.Duration("timeout", 15*time.Second, "cloud request timeout")

	if err := fset.Parse(args); err != nil {
		return nil, nil, err
	}

	k := koanf.New(".")

	path := *configPath
	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	} else if def := filepath.Join(defaultDataDir(), "config.yaml"); fileExists(def) {
		if err := k.Load(file.Provider(def), yaml.Parser()); err != nil {
			return nil, nil, fmt.Errorf("config: load %s: %w", def, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, nil, fmt.Errorf("config: env: %w", err)
	}
	if err := k.Load(posflag.Provider(fset, ".", k), nil); err != nil {
		return nil, nil, fmt.Errorf("config: flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Mode = strings.ToLower(cfg.Mode)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, fset.Args(), nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// envKey maps FLASHCARDS_DATA_DIR to data-dir. FLASHCARDS_CONFIG is read
// separately and ignored here.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if key == "config" {
		return ""
	}
	return strings.ReplaceAll(key, "_", "-")
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "flashcards")
	}
	return ".flashcards"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
