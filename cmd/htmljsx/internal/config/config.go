package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/livefir/htmljsx"
)

const (
	// ConfigFileName is the name of the config file
	ConfigFileName = "config.yaml"

	// DefaultConfigDir is the default directory for htmljsx configuration
	// This will be ~/.config/htmljsx/ on Unix systems
	DefaultConfigDir = ".config/htmljsx"

	// CurrentVersion is written into new config files
	CurrentVersion = "1.0"
)

// Config represents the htmljsx CLI configuration
type Config struct {
	// Minify collapses whitespace and comments before converting
	Minify bool `yaml:"minify"`

	// MaxDepth bounds element nesting, 0 disables the check
	MaxDepth int `yaml:"max_depth" validate:"gte=0"`

	// OutputExt is the extension of files written by watch
	OutputExt string `yaml:"output_ext" validate:"required,startswith=.,excludes=/"`

	// ListenAddr is where serve listens
	ListenAddr string `yaml:"listen_addr" validate:"required,hostname_port"`

	// MergeTagMarker prefixes the comments that carry merge tags
	MergeTagMarker string `yaml:"merge_tag_marker" validate:"required"`

	// Version tracks the config file version for future migrations
	Version string `yaml:"version,omitempty"`
}

// Keys lists the settable keys in display order
var Keys = []string{"minify", "max_depth", "output_ext", "listen_addr", "merge_tag_marker"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML key so errors match what users type.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	defaults := htmljsx.DefaultConfig()
	return &Config{
		Minify:         defaults.Minify,
		MaxDepth:       defaults.MaxDepth,
		OutputExt:      ".jsx",
		ListenAddr:     ":8080",
		MergeTagMarker: defaults.MergeTagMarker,
		Version:        CurrentVersion,
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// GetConfigDir returns the directory containing the config file
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// LoadConfig loads the configuration from the config file.
// If the file doesn't exist, returns a default config. Keys missing from
// the file keep their defaults.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Version == "" {
		config.Version = CurrentVersion
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig validates and saves the configuration to the config file
func SaveConfig(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every field and reports all failures at once
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}
		return ValidationToMultiError(err)
	}
	return nil
}

// Options returns the converter options this configuration selects
func (c *Config) Options() []htmljsx.Option {
	return []htmljsx.Option{
		htmljsx.WithMinify(c.Minify),
		htmljsx.WithMaxDepth(c.MaxDepth),
		htmljsx.WithMergeTagMarker(c.MergeTagMarker),
	}
}

// Get returns the value of key formatted for display
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "minify":
		return fmt.Sprintf("%t", c.Minify), nil
	case "max_depth":
		return fmt.Sprintf("%d", c.MaxDepth), nil
	case "output_ext":
		return c.OutputExt, nil
	case "listen_addr":
		return c.ListenAddr, nil
	case "merge_tag_marker":
		return c.MergeTagMarker, nil
	default:
		return "", unknownKey(key)
	}
}

// Set parses value into key. The result is not validated.
func (c *Config) Set(key, value string) error {
	switch key {
	case "minify":
		switch strings.ToLower(value) {
		case "true", "yes", "on", "1":
			c.Minify = true
		case "false", "no", "off", "0":
			c.Minify = false
		default:
			return fmt.Errorf("minify must be true or false, got %q", value)
		}
	case "max_depth":
		depth, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_depth must be a number, got %q", value)
		}
		c.MaxDepth = depth
	case "output_ext":
		c.OutputExt = value
	case "listen_addr":
		c.ListenAddr = value
	case "merge_tag_marker":
		c.MergeTagMarker = value
	default:
		return unknownKey(key)
	}
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown key: %s (expected: %s)", key, strings.Join(Keys, ", "))
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MultiError is a collection of field errors (implements error interface)
type MultiError []FieldError

func (m MultiError) Error() string {
	if len(m) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidationToMultiError converts go-playground/validator errors to MultiError
func ValidationToMultiError(err error) MultiError {
	var fieldErrors MultiError

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fieldErrors
	}

	for _, e := range validationErrs {
		var message string
		switch e.Tag() {
		case "required":
			message = "is required"
		case "gte":
			message = fmt.Sprintf("must be at least %s", e.Param())
		case "startswith":
			message = fmt.Sprintf("must start with %q", e.Param())
		case "excludes":
			message = fmt.Sprintf("must not contain %q", e.Param())
		case "hostname_port":
			message = "must be a host:port address"
		default:
			message = "is invalid"
		}

		fieldErrors = append(fieldErrors, FieldError{
			Field:   e.Field(),
			Message: message,
		})
	}

	return fieldErrors
}
