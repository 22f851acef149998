package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"bidiflip/bidi"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	RemConfig struct {
		Enable bool    `yaml:"enable"`
		BasePx float64 `yaml:"base_px" validate:"gt=0"`
	}

	BidiConfig struct {
		Direction   bidi.Direction    `yaml:"direction" validate:"gte=0,lte=1"`
		Language    string            `yaml:"language,omitempty" validate:"omitempty,bcp47_language_tag"`
		Rem         RemConfig         `yaml:"rem"`
		Breakpoints map[string]string `yaml:"breakpoints" validate:"dive,keys,required,endkeys,required"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Bidi      BidiConfig     `yaml:"bidi"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// ResolveDirection returns configured direction. When language is set its
// script decides.
func (conf *BidiConfig) ResolveDirection() (bidi.Direction, error) {
	if conf.Language == "" {
		return conf.Direction, nil
	}
	tag, err := language.Parse(conf.Language)
	if err != nil {
		return conf.Direction, fmt.Errorf("bad language '%s': %w", conf.Language, err)
	}
	return bidi.DirectionForLanguage(tag), nil
}

// EngineOptions translates configuration into engine options.
func (conf *BidiConfig) EngineOptions() []bidi.Option {
	opts := []bidi.Option{
		bidi.WithScaler(bidi.RemScaler{Base: decimal.NewFromFloat(conf.Rem.BasePx)}),
	}
	if len(conf.Breakpoints) > 0 {
		opts = append(opts, bidi.WithMediaWrapper(bidi.BreakpointWrapper(conf.Breakpoints)))
	}
	return opts
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
