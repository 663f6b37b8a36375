package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/vango-dev/toaster/internal/errors"
	"github.com/vango-dev/toaster/internal/logging"
	"github.com/vango-dev/toaster/pkg/toast"
	"github.com/vango-dev/toaster/pkg/toaster"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "toaster.json"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "TOASTER_"

	// NoExpiry is the "expiry" value for toasts that never expire.
	NoExpiry = "none"
)

// Config represents the complete toaster.json configuration.
type Config struct {
	// Expiry is the default toast expiry, a duration string or "none".
	Expiry string `json:"expiry,omitempty"`

	// ExitDuration is the length of the exit transition.
	ExitDuration string `json:"exitDuration,omitempty"`

	// Position is the default corner.
	Position string `json:"position,omitempty"`

	// Level is the default level.
	Level string `json:"level,omitempty"`

	// Progress shows the countdown indicator on expiring toasts.
	Progress bool `json:"progress"`

	// Dismissable lets a click clear a toast early.
	Dismissable bool `json:"dismissable"`

	// Mode is the projection mode, "stacked" or "list".
	Mode string `json:"mode,omitempty"`

	// Log configures the logger.
	Log logging.Config `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Expiry:       toast.DefaultExpiry.String(),
		ExitDuration: toaster.DefaultExitDuration.String(),
		Position:     toast.BottomLeft.String(),
		Level:        toast.Info.String(),
		Progress:     true,
		Dismissable:  true,
		Mode:         toaster.ModeStacked.String(),
		Log:          logging.DefaultConfig(),
	}
}

// Load reads configuration from the specified directory.
// It looks for toaster.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("T022").
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Run 'toaster config init' to write the default configuration")
		}
		return nil, errors.New("T020").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("T020").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Resolve builds the effective configuration: the file at path (or
// toaster.json in the working directory when path is empty and the file
// exists), then .env and TOASTER_* overrides, then validation.
func Resolve(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch {
	case path != "":
		cfg, err = LoadFile(path)
	case Exists("."):
		cfg, err = Load(".")
	default:
		cfg = New()
	}
	if err != nil {
		return nil, err
	}

	if err := LoadEnvFile(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads the given .env files (default ".env") into the process
// environment. Missing files are skipped; variables already set win.
func LoadEnvFile(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.New("T020").
				WithDetail("Failed to load " + f).
				Wrap(err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from TOASTER_* environment variables.
func (c *Config) ApplyEnv() error {
	texts := map[string]*string{
		"EXPIRY":        &c.Expiry,
		"EXIT_DURATION": &c.ExitDuration,
		"POSITION":      &c.Position,
		"LEVEL":         &c.Level,
		"MODE":          &c.Mode,
		"LOG_LEVEL":     &c.Log.Level,
		"LOG_FORMAT":    &c.Log.Format,
		"LOG_OUTPUT":    &c.Log.Output,
	}
	for key, field := range texts {
		if value, ok := os.LookupEnv(EnvPrefix + key); ok {
			*field = value
		}
	}

	bools := map[string]*bool{
		"PROGRESS":    &c.Progress,
		"DISMISSABLE": &c.Dismissable,
	}
	for key, field := range bools {
		value, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.New("T021").
				WithDetail(EnvPrefix + key + " must be true or false, got " + strconv.Quote(value))
		}
		*field = b
	}
	return nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := c.JSON()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("T020").Wrap(err)
	}

	c.configPath = path
	return nil
}

// JSON returns the indented JSON form of the configuration.
func (c *Config) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.New("T020").Wrap(err)
	}
	return append(data, '\n'), nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	defaults := New()
	if c.Expiry == "" {
		c.Expiry = defaults.Expiry
	}
	if c.ExitDuration == "" {
		c.ExitDuration = defaults.ExitDuration
	}
	if c.Position == "" {
		c.Position = defaults.Position
	}
	if c.Level == "" {
		c.Level = defaults.Level
	}
	if c.Mode == "" {
		c.Mode = defaults.Mode
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Log.Output == "" {
		c.Log.Output = defaults.Log.Output
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.ExpiryDuration(); err != nil {
		return err
	}
	if _, err := c.ExitDurationValue(); err != nil {
		return err
	}
	if _, err := toast.ParsePosition(c.Position); err != nil {
		return invalid("position", c.Position, "one of top-left, top-right, bottom-right, bottom-left")
	}
	if _, err := toast.ParseLevel(c.Level); err != nil {
		return invalid("level", c.Level, "one of info, success, warn, error")
	}
	if _, err := toaster.ParseMode(c.Mode); err != nil {
		return invalid("mode", c.Mode, "stacked or list")
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return invalid("log.level", c.Log.Level, "one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return invalid("log.format", c.Log.Format, "text or json")
	}
	switch c.Log.Output {
	case "", "stdout", "stderr":
	default:
		return invalid("log.output", c.Log.Output, "stdout or stderr")
	}
	return nil
}

func invalid(key, value, want string) *errors.ToastError {
	return errors.New("T021").
		WithDetail(key + " is " + strconv.Quote(value) + ", expected " + want)
}

// ExpiryDuration returns the parsed default expiry. "none" yields
// toast.NoExpiry.
func (c *Config) ExpiryDuration() (time.Duration, error) {
	if c.Expiry == NoExpiry {
		return toast.NoExpiry, nil
	}
	d, err := time.ParseDuration(c.Expiry)
	if err != nil || d < 0 {
		return 0, invalid("expiry", c.Expiry, `a non-negative duration such as "2500ms", or "none"`)
	}
	return d, nil
}

// ExitDurationValue returns the parsed exit transition length.
func (c *Config) ExitDurationValue() (time.Duration, error) {
	d, err := time.ParseDuration(c.ExitDuration)
	if err != nil || d < 0 {
		return 0, invalid("exitDuration", c.ExitDuration, `a non-negative duration such as "200ms"`)
	}
	return d, nil
}

// Builder returns a toast builder for message carrying the configured
// defaults. Invalid values fall back to the library defaults; call
// Validate first to surface them.
func (c *Config) Builder(message string) toast.Builder {
	b := toast.New(message).
		WithProgress(c.Progress).
		WithDismissable(c.Dismissable)

	if d, err := c.ExpiryDuration(); err == nil {
		b = b.WithExpiry(d)
	}
	if pos, err := toast.ParsePosition(c.Position); err == nil {
		b = b.WithPosition(pos)
	}
	if level, err := toast.ParseLevel(c.Level); err == nil {
		b = b.WithLevel(level)
	}
	return b
}

// ProjectionMode returns the configured projection mode.
func (c *Config) ProjectionMode() toaster.Mode {
	mode, _ := toaster.ParseMode(c.Mode)
	return mode
}

// ToasterOptions returns registry options derived from the configuration.
func (c *Config) ToasterOptions() []toaster.Option {
	var opts []toaster.Option
	if d, err := c.ExitDurationValue(); err == nil {
		opts = append(opts, toaster.WithExitDuration(d))
	}
	return opts
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
