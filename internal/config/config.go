// SPDX-License-Identifier: MIT

// Package config loads generator settings from YAML or JSON files.
//
// Files are decoded in two passes: gopkg.in/yaml.v3 turns the document into a
// generic map (JSON is read the same way, being a YAML subset), then
// mapstructure fills the typed File so unknown keys are reported instead of
// silently dropped. File.Build turns the result into a validated
// generator.Config.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/katalvlaran/hmmgen/generator"
	"github.com/katalvlaran/hmmgen/hidden"
	"github.com/katalvlaran/hmmgen/markov"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a file extension other than .yaml, .yml
// or .json.
var ErrUnknownFormat = errors.New("config: unknown file format")

//go:embed cpg.yaml
var cpgPreset []byte

// State is the per-hidden-state section of a File.
type State struct {
	Label    string      `mapstructure:"label"`
	MinDwell int         `mapstructure:"min_dwell"`
	Initial  int         `mapstructure:"initial"`
	Emission [][]float64 `mapstructure:"emission"`
}

// File mirrors the on-disk configuration.
type File struct {
	Alphabet     []string    `mapstructure:"alphabet"`
	Length       int         `mapstructure:"length"`
	Seed         int64       `mapstructure:"seed"`
	InitialState string      `mapstructure:"initial_state"`
	Hidden       [][]float64 `mapstructure:"hidden"`
	InRegion     State       `mapstructure:"in_region"`
	OutOfRegion  State       `mapstructure:"out_of_region"`
}

// Default returns the embedded CpG island preset.
func Default() *File {
	f, err := Parse(cpgPreset, "yaml")
	if err != nil {
		panic(fmt.Sprintf("config: embedded preset: %v", err))
	}
	return f
}

// Load reads path and parses it according to its extension.
func Load(path string) (*File, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("%s: extension %q: %w", path, ext, ErrUnknownFormat)
	}
}

// Parse decodes data in the given format ("yaml" or "json").
func Parse(data []byte, format string) (*File, error) {
	if format != "yaml" && format != "json" {
		return nil, fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", format, err)
	}

	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &f,
		ErrorUnused: true,
		DecodeHook:  rejectFractional,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &f, nil
}

// rejectFractional stops mapstructure from truncating 49.9 into an int field.
func rejectFractional(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	v := reflect.ValueOf(data).Float()
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return nil, fmt.Errorf("%v is not an integer: %w", data, generator.ErrInvalidConfiguration)
	}
	return data, nil
}

// Build converts f into a validated generator.Config. An empty initial_state
// starts in the out-of-region state.
//
// Errors: generator.ErrInvalidConfiguration for an unknown initial state
// label, plus anything markov constructors or Config.Validate report.
func (f *File) Build() (generator.Config, error) {
	var cfg generator.Config

	alphabet, err := markov.NewAlphabet(f.Alphabet...)
	if err != nil {
		return cfg, fmt.Errorf("alphabet: %w", err)
	}
	hiddenTM, err := markov.NewTransitionMatrix(f.Hidden)
	if err != nil {
		return cfg, fmt.Errorf("hidden: %w", err)
	}

	cfg = generator.Config{
		Alphabet:     alphabet,
		Hidden:       hiddenTM,
		Labels:       hidden.Labels{f.InRegion.Label, f.OutOfRegion.Label},
		Length:       f.Length,
		Seed:         f.Seed,
		InitialState: hidden.OutOfRegion,
	}
	for i, sec := range [hidden.NumStates]State{f.InRegion, f.OutOfRegion} {
		s := hidden.State(i)
		tm, err := markov.NewTransitionMatrix(sec.Emission)
		if err != nil {
			return generator.Config{}, fmt.Errorf("%s emission: %w", s, err)
		}
		cfg.Emission[s] = tm
		cfg.MinDwell[s] = sec.MinDwell
		cfg.InitialEmission[s] = sec.Initial
	}

	if f.InitialState != "" {
		if cfg.InitialState, err = hidden.ParseState(f.InitialState, cfg.Labels); err != nil {
			return generator.Config{}, fmt.Errorf("initial_state: %w", err)
		}
	}

	if err = cfg.Validate(); err != nil {
		return generator.Config{}, err
	}
	return cfg, nil
}
