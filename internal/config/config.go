// Package config loads promptweight settings from YAML with environment
// overrides and watches the file for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/promptweight/weight"
)

// ErrInvalidRange is returned when the weight bounds are inverted.
var ErrInvalidRange = errors.New("weight min exceeds max")

type Config struct {
	Weight  WeightConfig  `yaml:"weight"`
	Editor  EditorConfig  `yaml:"editor"`
	Logging LoggingConfig `yaml:"logging"`
}

type WeightConfig struct {
	Step            float64 `yaml:"step"`
	ShiftMultiplier float64 `yaml:"shift_multiplier"`
	Min             float64 `yaml:"min"`
	Max             float64 `yaml:"max"`
	Precision       int     `yaml:"precision"`
	WholeTag        bool    `yaml:"whole_tag"`
}

type EditorConfig struct {
	ShowLineNumbers bool `yaml:"show_line_numbers"`
	// Wrap is one of "word", "grapheme" or "none".
	Wrap         string `yaml:"wrap"`
	TabWidth     int    `yaml:"tab_width"`
	HistoryLimit int    `yaml:"history_limit"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	// File receives logs while the interactive editor owns the terminal.
	File string `yaml:"file"`
}

// Weight returns the normalized weight.Config.
func (w WeightConfig) Weight() weight.Config {
	return weight.Config{
		Step:            w.Step,
		ShiftMultiplier: w.ShiftMultiplier,
		Min:             w.Min,
		Max:             w.Max,
		Precision:       w.Precision,
		WholeTag:        w.WholeTag,
	}.Normalize()
}

func defaults() *Config {
	return &Config{
		Weight: WeightConfig{
			Step:            weight.DefaultStep,
			ShiftMultiplier: weight.DefaultShiftMultiplier,
			Min:             weight.DefaultMin,
			Max:             weight.DefaultMax,
			Precision:       weight.DefaultPrecision,
		},
		Editor: EditorConfig{
			ShowLineNumbers: true,
			Wrap:            "word",
			TabWidth:        4,
			HistoryLimit:    1000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults, applies PROMPTWEIGHT_* overrides and
// normalizes the weight section. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	norm := cfg.Weight.Weight()
	cfg.Weight = WeightConfig{
		Step:            norm.Step,
		ShiftMultiplier: norm.ShiftMultiplier,
		Min:             norm.Min,
		Max:             norm.Max,
		Precision:       norm.Precision,
		WholeTag:        norm.WholeTag,
	}
	if cfg.Weight.Min > cfg.Weight.Max {
		return nil, fmt.Errorf("validate config: %w (min %g, max %g)", ErrInvalidRange, cfg.Weight.Min, cfg.Weight.Max)
	}
	switch cfg.Editor.Wrap {
	case "word", "grapheme", "none":
	default:
		return nil, fmt.Errorf("validate config: unknown wrap mode %q", cfg.Editor.Wrap)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	envFloat("PROMPTWEIGHT_STEP", &cfg.Weight.Step)
	envFloat("PROMPTWEIGHT_SHIFT_MULTIPLIER", &cfg.Weight.ShiftMultiplier)
	envFloat("PROMPTWEIGHT_MIN", &cfg.Weight.Min)
	envFloat("PROMPTWEIGHT_MAX", &cfg.Weight.Max)
	if v := os.Getenv("PROMPTWEIGHT_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Weight.Precision = n
		}
	}
	if v := os.Getenv("PROMPTWEIGHT_WHOLE_TAG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Weight.WholeTag = b
		}
	}
	if v := os.Getenv("PROMPTWEIGHT_WRAP"); v != "" {
		cfg.Editor.Wrap = v
	}
	if v := os.Getenv("PROMPTWEIGHT_LINE_NUMBERS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Editor.ShowLineNumbers = b
		}
	}
	if v := os.Getenv("PROMPTWEIGHT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PROMPTWEIGHT_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}

func envFloat(name string, dst *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		*dst = f
	}
}
