// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package config describes where gridgen reads examples from and where it
writes the gallery grid.

Defaults match the pydeck docs layout (examples in ../examples, grid in
../gallery/html/grid.html). They can be overridden by a TOML or YAML file
and then by command line flags.
*/
package config
