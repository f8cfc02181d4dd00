// edgeview - Constraint-based edge decorations for terminal views.
// Copyright (C) 2024 Tulir Asokan
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config contains the YAML configuration of the edge demo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"go.mau.fi/tcell"
	"go.mau.fi/util/ptr"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"

	"go.mau.fi/edgeview/widget"
)

const FileName = "config.yaml"

type HostConfig struct {
	Name       string       `yaml:"name"`
	Text       string       `yaml:"text"`
	Background widget.Color `yaml:"background"`
}

// EdgeDefaults are applied to edges that are added interactively.
type EdgeDefaults struct {
	Thickness     float64      `yaml:"thickness"`
	Color         widget.Color `yaml:"color"`
	LeadingSpace  float64      `yaml:"leading_space"`
	TrailingSpace float64      `yaml:"trailing_space"`
}

// Config contains the main config of the edge demo.
type Config struct {
	Dir string `yaml:"-"`

	Host     HostConfig         `yaml:"host"`
	Defaults EdgeDefaults       `yaml:"defaults"`
	Edges    []widget.EdgeState `yaml:"edges,omitempty"`

	StorePath string            `yaml:"store_path"`
	Logging   zeroconfig.Config `yaml:"logging"`
}

func makeDefaultFileWriter(configDir string) zeroconfig.WriterConfig {
	return zeroconfig.WriterConfig{
		Type:   zeroconfig.WriterTypeFile,
		Format: "json",
		FileConfig: zeroconfig.FileConfig{
			Filename:   filepath.Join(configDir, "edgedemo.log"),
			MaxSize:    100,
			MaxBackups: 10,
		},
	}
}

// NewConfig creates a config with default values that loads data from the given directory.
func NewConfig(configDir string) *Config {
	return &Config{
		Dir: configDir,
		Host: HostConfig{
			Name:       "main",
			Text:       "edgeview",
			Background: widget.Color(tcell.ColorDefault),
		},
		Defaults: EdgeDefaults{
			Thickness: widget.DefaultThickness,
			Color:     widget.Color(widget.DefaultColor),
		},
		StorePath: filepath.Join(configDir, "edges.db"),
		Logging: zeroconfig.Config{
			MinLevel: ptr.Ptr(zerolog.InfoLevel),
			Writers:  []zeroconfig.WriterConfig{makeDefaultFileWriter(configDir)},
		},
	}
}

func (config *Config) Path() string {
	return filepath.Join(config.Dir, FileName)
}

// Load reads config.yaml from the config directory. If the file doesn't
// exist, or if missing values had to be filled in, the config is saved.
func (config *Config) Load() error {
	changed, err := config.read()
	if errors.Is(err, os.ErrNotExist) {
		return config.Save()
	} else if err != nil {
		return err
	} else if changed {
		return config.Save()
	}
	return nil
}

func (config *Config) read() (changed bool, err error) {
	file, err := os.Open(config.Path())
	if err != nil {
		return false, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()
	err = yaml.NewDecoder(file).Decode(config)
	if err != nil {
		return false, fmt.Errorf("failed to parse config at %s: %w", config.Path(), err)
	}
	if config.Defaults.Thickness < 0 {
		config.Defaults.Thickness = widget.DefaultThickness
		changed = true
	}
	if len(config.Host.Name) == 0 {
		config.Host.Name = "main"
		changed = true
	}
	if len(config.StorePath) == 0 {
		config.StorePath = filepath.Join(config.Dir, "edges.db")
		changed = true
	}
	if len(config.Logging.Writers) == 0 {
		config.Logging.Writers = []zeroconfig.WriterConfig{makeDefaultFileWriter(config.Dir)}
		changed = true
	}
	return changed, nil
}

// Save writes the config to config.yaml in the config directory.
func (config *Config) Save() error {
	err := os.MkdirAll(config.Dir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	file, err := os.OpenFile(config.Path(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config for writing: %w", err)
	}
	defer file.Close()
	return yaml.NewEncoder(file).Encode(config)
}

// EdgeOptions returns the options for interactively added edges.
func (config *Config) EdgeOptions() []widget.EdgeOption {
	return []widget.EdgeOption{
		widget.WithThickness(config.Defaults.Thickness),
		widget.WithColor(tcell.Color(config.Defaults.Color)),
		widget.WithSpacing(config.Defaults.LeadingSpace, config.Defaults.TrailingSpace),
	}
}

// CompileLogger builds the logger from the logging section. Stdout and
// stderr writers are dropped since the terminal is owned by the UI.
func (config *Config) CompileLogger() (*zerolog.Logger, error) {
	logging := config.Logging
	logging.Writers = slices.DeleteFunc(slices.Clone(logging.Writers), func(writer zeroconfig.WriterConfig) bool {
		return writer.Type == zeroconfig.WriterTypeStdout || writer.Type == zeroconfig.WriterTypeStderr
	})
	log, err := logging.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return log, nil
}
