// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/visgl/gridgen/pkg/config"
	"github.com/visgl/gridgen/pkg/files"
)

func TestDefault(t *testing.T) {
	require.Equal(t, config.Config{
		ExamplesDir: "../examples",
		Pattern:     "*_layer.py",
		OutputPath:  "../gallery/html/grid.html",
	}, config.Default())
}

func TestLoadFileTOML(t *testing.T) {
	path := writeConfig(t, "gridgen.toml", `
examples_dir = "examples"
pattern = "*_layer.go"
atomic = true
`)

	conf, err := config.Default().LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.Config{
		ExamplesDir: "examples",
		Pattern:     "*_layer.go",
		OutputPath:  "../gallery/html/grid.html",
		Atomic:      true,
	}, conf)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeConfig(t, "gridgen.yml", `
output: out/grid.html
min_version: 0.0.1
`)

	conf, err := config.Default().LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.Config{
		ExamplesDir: "../examples",
		Pattern:     "*_layer.py",
		OutputPath:  "out/grid.html",
		MinVersion:  "0.0.1",
	}, conf)
}

func TestLoadFileEmptyYAML(t *testing.T) {
	conf, err := config.Default().LoadFile(writeConfig(t, "gridgen.yaml", ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), conf)
}

func TestLoadFileUnknownKeys(t *testing.T) {
	_, err := config.Default().LoadFile(writeConfig(t, "gridgen.toml", `colums = 4`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unknown key 'colums'")

	_, err = config.Default().LoadFile(writeConfig(t, "gridgen.yaml", `colums: 4`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "field colums not found")
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "gridgen.json", `{}`)

	_, err := config.Default().LoadFile(path)
	require.EqualError(t, err, "Expected config file '"+path+"' to have one of extensions: .toml, .yaml, .yml")
}

func TestLoadFileMissing(t *testing.T) {
	_, err := config.Default().LoadFile(filepath.Join(t.TempDir(), "gridgen.toml"))

	var fsErr files.FilesystemError
	require.True(t, errors.As(err, &fsErr))
}

func TestResolve(t *testing.T) {
	conf := config.Default().Resolve("/docs/scripts")
	require.Equal(t, "/docs/examples", conf.ExamplesDir)
	require.Equal(t, "/docs/gallery/html/grid.html", conf.OutputPath)

	conf = config.Config{ExamplesDir: "/abs/examples", OutputPath: "-"}.Resolve("/docs/scripts")
	require.Equal(t, "/abs/examples", conf.ExamplesDir)
	require.Equal(t, "-", conf.OutputPath)
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.Default().Validate("0.1.0"))

	cases := []struct {
		mutate      func(*config.Config)
		expectedErr string
	}{
		{func(c *config.Config) { c.ExamplesDir = "" }, "Expected examples directory to be non-empty"},
		{func(c *config.Config) { c.Pattern = "" }, "Expected pattern to be non-empty"},
		{func(c *config.Config) { c.Pattern = "sub/*.py" }, "Expected pattern 'sub/*.py' to match file names only (without path separators)"},
		{func(c *config.Config) { c.OutputPath = "" }, "Expected output path to be non-empty"},
		{func(c *config.Config) { c.OutputPath = "-"; c.Atomic = true }, "Expected atomic writes to be used with an output file, not stdout"},
		{func(c *config.Config) { c.MinVersion = "0.2.0" }, "gridgen version 0.1.0 does not meet the minimum required version 0.2.0"},
	}

	for _, tc := range cases {
		conf := config.Default()
		tc.mutate(&conf)
		require.EqualError(t, conf.Validate("0.1.0"), tc.expectedErr)
	}
}

func TestValidateMalformedMinVersion(t *testing.T) {
	conf := config.Default()
	conf.MinVersion = "not-a-version"

	err := conf.Validate("0.1.0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Parsing min_version 'not-a-version': ")
}

func TestValidateMinVersionSatisfied(t *testing.T) {
	conf := config.Default()
	conf.MinVersion = "0.1.0"
	require.NoError(t, conf.Validate("0.1.0"))
	require.NoError(t, conf.Validate("1.4.2"))
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
