// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	goversion "github.com/hashicorp/go-version"
	"github.com/visgl/gridgen/pkg/files"
	"gopkg.in/yaml.v3"
)

const (
	DefaultExamplesDir = "../examples"
	DefaultPattern     = "*_layer.py"
	DefaultOutputPath  = "../gallery/html/grid.html"
)

type Config struct {
	ExamplesDir string `toml:"examples_dir" yaml:"examples_dir"`
	Pattern     string `toml:"pattern" yaml:"pattern"`
	OutputPath  string `toml:"output" yaml:"output"`
	Atomic      bool   `toml:"atomic" yaml:"atomic"`
	MinVersion  string `toml:"min_version" yaml:"min_version"`
}

func Default() Config {
	return Config{
		ExamplesDir: DefaultExamplesDir,
		Pattern:     DefaultPattern,
		OutputPath:  DefaultOutputPath,
	}
}

// LoadFile overlays values found in a .toml or .yaml/.yml file on top of c.
// Keys absent from the file keep their current values.
func (c Config) LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, files.FilesystemError{Op: "Reading config file", Path: path, Err: err}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return Config{}, fmt.Errorf("Unmarshaling config file '%s': %s", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("Unmarshaling config file '%s': Unknown key '%s'", path, undecoded[0])
		}

	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// empty file leaves config untouched
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("Unmarshaling config file '%s': %s", path, err)
		}

	default:
		return Config{}, fmt.Errorf("Expected config file '%s' to have one of extensions: .toml, .yaml, .yml", path)
	}

	return c, nil
}

// Resolve makes relative paths relative to baseDir
// (output path "-" stands for stdout and is left as is).
func (c Config) Resolve(baseDir string) Config {
	if !filepath.IsAbs(c.ExamplesDir) {
		c.ExamplesDir = filepath.Join(baseDir, c.ExamplesDir)
	}
	if c.OutputPath != files.StdoutPath && !filepath.IsAbs(c.OutputPath) {
		c.OutputPath = filepath.Join(baseDir, c.OutputPath)
	}
	return c
}

func (c Config) Validate(currentVersion string) error {
	if len(c.ExamplesDir) == 0 {
		return fmt.Errorf("Expected examples directory to be non-empty")
	}
	if len(c.Pattern) == 0 {
		return fmt.Errorf("Expected pattern to be non-empty")
	}
	if strings.ContainsRune(c.Pattern, filepath.Separator) {
		return fmt.Errorf("Expected pattern '%s' to match file names only (without path separators)", c.Pattern)
	}
	if len(c.OutputPath) == 0 {
		return fmt.Errorf("Expected output path to be non-empty")
	}
	if c.Atomic && c.OutputPath == files.StdoutPath {
		return fmt.Errorf("Expected atomic writes to be used with an output file, not stdout")
	}
	return c.checkMinVersion(currentVersion)
}

func (c Config) checkMinVersion(currentVersion string) error {
	if len(c.MinVersion) == 0 {
		return nil
	}

	userConstraint, err := goversion.NewConstraint(">=" + c.MinVersion)
	if err != nil {
		return fmt.Errorf("Parsing min_version '%s': %s", c.MinVersion, err)
	}

	ver, err := goversion.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("Parsing gridgen version '%s': %s", currentVersion, err)
	}

	if !userConstraint.Check(ver) {
		return fmt.Errorf("gridgen version %s does not meet the minimum required version %s", currentVersion, c.MinVersion)
	}

	return nil
}
