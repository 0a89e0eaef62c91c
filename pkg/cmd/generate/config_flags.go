// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/visgl/gridgen/pkg/config"
)

// ConfigFlags override values coming from config.Default and an
// optional config file. Empty values leave lower layers untouched.
type ConfigFlags struct {
	File        string
	BaseDir     string
	ExamplesDir string
	Pattern     string
	OutputPath  string
	Atomic      bool
}

func (s *ConfigFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.File, "file", "c", "", "Config file (.toml, .yaml or .yml)")
	cmd.Flags().StringVar(&s.BaseDir, "base-dir", "", "Directory relative paths are resolved against (defaults to working directory)")
	cmd.Flags().StringVar(&s.ExamplesDir, "examples-dir", "",
		fmt.Sprintf("Directory with example files (default '%s')", config.DefaultExamplesDir))
	cmd.Flags().StringVar(&s.Pattern, "pattern", "",
		fmt.Sprintf("Glob pattern selecting example files (default '%s')", config.DefaultPattern))
	cmd.Flags().StringVarP(&s.OutputPath, "output", "o", "",
		fmt.Sprintf("Output file, or '-' for stdout (default '%s')", config.DefaultOutputPath))
	cmd.Flags().BoolVar(&s.Atomic, "atomic", false, "Write output via temporary file and rename")
}

// Config layers defaults, config file and flags. Relative paths resolve
// against base dir, which itself resolves against wd.
func (s *ConfigFlags) Config(wd string) (config.Config, error) {
	conf := config.Default()

	baseDir := wd
	if len(s.BaseDir) > 0 {
		baseDir = s.BaseDir
		if !filepath.IsAbs(baseDir) {
			baseDir = filepath.Join(wd, baseDir)
		}
	}

	if len(s.File) > 0 {
		configPath := s.File
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(wd, configPath)
		}

		var err error

		conf, err = conf.LoadFile(configPath)
		if err != nil {
			return config.Config{}, err
		}
	}

	if len(s.ExamplesDir) > 0 {
		conf.ExamplesDir = s.ExamplesDir
	}
	if len(s.Pattern) > 0 {
		conf.Pattern = s.Pattern
	}
	if len(s.OutputPath) > 0 {
		conf.OutputPath = s.OutputPath
	}
	if s.Atomic {
		conf.Atomic = true
	}

	return conf.Resolve(baseDir), nil
}
