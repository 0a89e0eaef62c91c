// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
	"github.com/visgl/gridgen/pkg/cmd/generate"
	"github.com/visgl/gridgen/pkg/version"
)

type GridgenOptions struct {
	Generate *generate.Options
}

func NewDefaultGridgenOptions() *GridgenOptions {
	return &GridgenOptions{Generate: generate.NewOptions()}
}

func NewDefaultGridgenCmd() *cobra.Command {
	return NewGridgenCmd(NewDefaultGridgenOptions())
}

func NewGridgenCmd(o *GridgenOptions) *cobra.Command {
	cmd := generate.NewCmd(o.Generate)

	cmd.Use = "gridgen"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "gridgen generates the example gallery grid for docs"
	cmd.Long = `gridgen generates the example gallery grid for docs.

It looks for example files (by default ../examples/*_layer.py), derives
a title from each file name and writes an HTML grid linking to every
example page and its thumbnail (by default ../gallery/html/grid.html).

Relative paths resolve against the current working directory, not the
location of the gridgen binary; run it from the docs scripts directory
(as go generate does) or point --base-dir at it.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
