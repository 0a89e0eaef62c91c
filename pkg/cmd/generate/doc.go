// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package generate implements the gallery grid generation command.

A run discovers example files, formats their display names, renders the
grid and writes (or, with --check, verifies) the output file. RunWithSlugs
skips discovery so rendering can be exercised without touching the
filesystem.
*/
package generate
