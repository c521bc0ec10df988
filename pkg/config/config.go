// Package config holds the settings of a tacc run. Settings come from
// defaults, an optional YAML file and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/raymyers/tacc/pkg/asmgen"
	"github.com/raymyers/tacc/pkg/qbe"
	"github.com/raymyers/tacc/pkg/source"
	"github.com/raymyers/tacc/pkg/tacgen"
	"gopkg.in/yaml.v3"
)

// Output stages, in the order they are printed.
const (
	StageTokens  = "tokens"
	StageSymbols = "symbols"
	StageTAC     = "tac"
	StageAsm     = "asm"
	StageQBE     = "qbe"
)

// Stages lists every stage name.
var Stages = []string{StageTokens, StageSymbols, StageTAC, StageAsm, StageQBE}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig is returned by Load and Validate.
var ErrInvalidConfig = errors.New("invalid config")

// QBE configures the QBE stage.
type QBE struct {
	Target string `yaml:"target"`
	Native bool   `yaml:"native"`
}

// Config is the full set of settings.
type Config struct {
	TypeKeywords   []string `yaml:"type_keywords"`
	TempPrefix     string   `yaml:"temp_prefix"`
	RegisterPrefix string   `yaml:"register_prefix"`
	Stages         []string `yaml:"stages"`
	QBE            QBE      `yaml:"qbe"`
	Color          string   `yaml:"color"`
	Digest         bool     `yaml:"digest"`
}

// Default returns the settings used when nothing else is given.
func Default() *Config {
	return &Config{
		TypeKeywords:   slices.Clone(source.DefaultTypeKeywords),
		TempPrefix:     tacgen.DefaultPrefix,
		RegisterPrefix: asmgen.DefaultPrefix,
		Stages:         []string{StageTokens, StageSymbols, StageTAC, StageAsm},
		Color:          ColorAuto,
	}
}

// Load reads a YAML file over the defaults. Keys that are absent keep their
// default value; unknown keys are an error.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse is Load for an already opened reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if len(c.TypeKeywords) == 0 {
		return fmt.Errorf("%w: type_keywords is empty", ErrInvalidConfig)
	}
	for _, kw := range c.TypeKeywords {
		if !isIdent(kw) {
			return fmt.Errorf("%w: type keyword %q is not an identifier", ErrInvalidConfig, kw)
		}
	}
	if c.TempPrefix == "" {
		return fmt.Errorf("%w: temp_prefix is empty", ErrInvalidConfig)
	}
	if c.RegisterPrefix == "" {
		return fmt.Errorf("%w: register_prefix is empty", ErrInvalidConfig)
	}
	for _, s := range c.Stages {
		if !slices.Contains(Stages, s) {
			return fmt.Errorf("%w: unknown stage %q", ErrInvalidConfig, s)
		}
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalidConfig, c.Color)
	}
	if c.QBE.Target != "" && !qbe.ValidTarget(c.QBE.Target) {
		return fmt.Errorf("%w: unknown qbe target %q", ErrInvalidConfig, c.QBE.Target)
	}
	return nil
}

// Enabled reports whether stage is printed.
func (c *Config) Enabled(stage string) bool {
	return slices.Contains(c.Stages, stage)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		letter := 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
		if !letter && (i == 0 || ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}
