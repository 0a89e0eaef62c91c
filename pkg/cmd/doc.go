// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd assembles gridgen's commands (instances of cobra.Command).

The root command generates the gallery grid; see package generate.
For a list of commands run:

	$ gridgen help
*/
package cmd
