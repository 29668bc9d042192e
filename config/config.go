package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/telemetrytv/wsrp"
)

// EnvPrefix prefixes every environment variable override, e.g.
// WSRP_BINDING_ADDRESS.
const EnvPrefix = "WSRP"

const (
	BindingHTTP = "http"
	BindingNATS = "nats"
)

type Config struct {
	Name                string                   `mapstructure:"name" validate:"required,max=255"`
	Version             string                   `mapstructure:"version" validate:"required,oneof=1 2 v1 v2"`
	Log                 LogConfig                `mapstructure:"log"`
	ServiceDescription  ServiceDescriptionConfig `mapstructure:"serviceDescription"`
	Binding             BindingConfig            `mapstructure:"binding"`
	CurrentMarkupHandle string                   `mapstructure:"currentMarkupHandle" validate:"max=255"`
	Behaviors           []string                 `mapstructure:"behaviors" validate:"dive,required,max=255"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

type ServiceDescriptionConfig struct {
	RequiresRegistration   bool   `mapstructure:"requiresRegistration"`
	RegistrationProperties int    `mapstructure:"registrationProperties" validate:"min=0"`
	CookieProtocol         string `mapstructure:"cookieProtocol" validate:"omitempty,oneof=none perUser perGroup"`
}

type BindingConfig struct {
	Kind    string `mapstructure:"kind" validate:"required,oneof=http nats"`
	Address string `mapstructure:"address" validate:"required_if=Kind http"`
	NatsURL string `mapstructure:"natsURL" validate:"required_if=Kind nats"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "wsrp-producer")
	v.SetDefault("version", "2")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("serviceDescription.requiresRegistration", false)
	v.SetDefault("serviceDescription.registrationProperties", 0)
	v.SetDefault("serviceDescription.cookieProtocol", string(wsrp.CookieProtocolNone))
	v.SetDefault("binding.kind", BindingHTTP)
	v.SetDefault("binding.address", ":8080")
	v.SetDefault("binding.natsURL", "nats://127.0.0.1:4222")
	v.SetDefault("currentMarkupHandle", "")
	v.SetDefault("behaviors", []string{"markup"})
}

// Load reads the YAML file at path, applies WSRP_* environment overrides and
// validates the result. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "failed to validate config")
	}

	var result *multierror.Error
	for _, fieldErr := range validationErrors {
		result = multierror.Append(result, errors.Errorf("%s: failed on %q", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return errors.Wrap(result.ErrorOrNil(), "invalid config")
}

// ProtocolVersion returns the parsed protocol version.
func (c *Config) ProtocolVersion() (wsrp.Version, error) {
	return wsrp.ParseVersion(c.Version)
}

// CookieProtocol returns the parsed cookie protocol.
func (c *Config) CookieProtocol() (wsrp.CookieProtocol, error) {
	return wsrp.ParseCookieProtocol(c.ServiceDescription.CookieProtocol)
}
