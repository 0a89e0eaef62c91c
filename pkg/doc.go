// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of gridgen.

From top-down, gridgen code is layered in this way:

# Entry Point

	./cmd/gridgen              // a command-line tool

# Commands

	pkg/cmd                    // root command, "version"
	pkg/cmd/generate           // gallery generation (the default command)
	pkg/cmd/ui                 // stdout/stderr and debug output

# Configuration

	pkg/config                 // defaults, TOML/YAML config files, version requirement

# Gallery

	pkg/gallery                // discovery of examples, display names
	pkg/gridhtml               // HTML grid rendering

# Filesystem

	pkg/files                  // listing example files, writing output

# Version

	pkg/version
*/
package pkg
