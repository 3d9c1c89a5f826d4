package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Log        LogConfig    `mapstructure:"log"`
	Parser     ParserConfig `mapstructure:"parser"`
	Report     ReportConfig `mapstructure:"report"`
	ConfigPath string       `mapstructure:"-"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

type ParserConfig struct {
	Workers int `mapstructure:"workers" validate:"min=1,max=64"`
}

type ReportConfig struct {
	Indent  int  `mapstructure:"indent" validate:"min=0,max=8"`
	Summary bool `mapstructure:"summary"`
}

func NewDefault() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", File: ""},
		Parser: ParserConfig{Workers: 1},
		Report: ReportConfig{Indent: 2, Summary: false},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid key, e.g. "parser.workers must be between 1 and 64".
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	key := configKey(fe.Namespace())
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", key, fe.Tag())
	}
}

// configKey maps "Config.Parser.Workers" to "parser.workers".
func configKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
