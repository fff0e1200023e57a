// Package config loads the CLI configuration from a YAML file, SAAS_* environment variables
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	saaserrors "saasconnector/pkg/errors"
)

// EnvPrefix prefixes every environment variable, e.g. SAAS_HOROSHOP_PASSWORD.
const EnvPrefix = "SAAS"

const defaultHTTPTimeout = 30 * time.Second

// Secret is a credential that is masked when the configuration is rendered.
type Secret string

// MarshalYAML implements yaml.Marshaler.
func (s Secret) MarshalYAML() (any, error) {
	if s == "" {
		return "", nil
	}
	return "********", nil
}

// Config is the effective CLI configuration.
type Config struct {
	LogLevel   string           `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat  string           `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`
	HTTP       HTTPConfig       `mapstructure:"http" yaml:"http"`
	Horoshop   HoroshopConfig   `mapstructure:"horoshop" yaml:"horoshop"`
	InSales    InSalesConfig    `mapstructure:"insales" yaml:"insales"`
	Tiu        TiuConfig        `mapstructure:"tiu" yaml:"tiu"`
	InPost     InPostConfig     `mapstructure:"inpost" yaml:"inpost"`
	Courierist CourieristConfig `mapstructure:"courierist" yaml:"courierist"`
}

// HTTPConfig is shared by every vendor transport.
type HTTPConfig struct {
	Timeout            time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0"`
	RateLimit          float64       `mapstructure:"rate_limit" yaml:"rate_limit" validate:"gte=0"`
	Burst              int           `mapstructure:"burst" yaml:"burst" validate:"gte=0"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// HoroshopConfig holds Horoshop credentials.
type HoroshopConfig struct {
	Domain   string `mapstructure:"domain" yaml:"domain"`
	Login    string `mapstructure:"login" yaml:"login"`
	Password Secret `mapstructure:"password" yaml:"password"`
	Token    Secret `mapstructure:"token" yaml:"token"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
}

// InSalesConfig holds InSales credentials.
type InSalesConfig struct {
	Domain   string `mapstructure:"domain" yaml:"domain"`
	APIKey   string `mapstructure:"api_key" yaml:"api_key"`
	Password Secret `mapstructure:"password" yaml:"password"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
}

// TiuConfig holds Tiu credentials.
type TiuConfig struct {
	URL   string `mapstructure:"url" yaml:"url" validate:"omitempty,url"`
	Token Secret `mapstructure:"token" yaml:"token"`
}

// InPostConfig overrides the InPost endpoint.
type InPostConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
}

// CourieristConfig holds Courierist credentials.
type CourieristConfig struct {
	Login    string `mapstructure:"login" yaml:"login"`
	Password Secret `mapstructure:"password" yaml:"password"`
	Token    Secret `mapstructure:"token" yaml:"token"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
}

//nolint:gochecknoglobals // Validator caches struct metadata
var structValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DefaultPath returns $HOME/.config/saasconnector/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "saasconnector", "config.yaml"), nil
}

// NewViper creates a viper instance with defaults, SAAS_* environment binding and the config
// file. A missing default config file is not an error; a missing explicit one is.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		path, err := DefaultPath()
		if err != nil {
			return v, nil //nolint:nilerr // Environment and flags still apply without a home directory
		}
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, saaserrors.NewConfigurationError("config", cfgFile, "failed to read config file", err)
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("http.timeout", defaultHTTPTimeout)
	v.SetDefault("http.rate_limit", 0)
	v.SetDefault("http.burst", 1)
	v.SetDefault("http.insecure_skip_verify", false)

	// Every key needs a default so AutomaticEnv can fill it during Unmarshal.
	for _, key := range []string{
		"horoshop.domain", "horoshop.login", "horoshop.password", "horoshop.token", "horoshop.endpoint",
		"insales.domain", "insales.api_key", "insales.password", "insales.endpoint",
		"tiu.url", "tiu.token",
		"inpost.endpoint",
		"courierist.login", "courierist.password", "courierist.token", "courierist.endpoint",
	} {
		v.SetDefault(key, "")
	}
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, saaserrors.NewConfigurationError("config", "", "failed to decode configuration", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := structValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			field := strings.TrimPrefix(fe.Namespace(), "Config.")
			return nil, saaserrors.NewConfigurationError(field, fmt.Sprint(fe.Value()),
				fmt.Sprintf("failed '%s' validation", fe.Tag()), err)
		}
		return nil, saaserrors.NewConfigurationError("config", "", "invalid configuration", err)
	}

	return &cfg, nil
}

// YAML renders the configuration with secrets masked.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render configuration: %w", err)
	}
	return data, nil
}
