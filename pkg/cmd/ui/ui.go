// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
)

// UI is what gridgen commands print through
type UI interface {
	// Printf writes regular output (eg --check diffs) to stdout
	Printf(string, ...interface{})
	// Warnf reports non-fatal problems on stderr
	Warnf(string, ...interface{})
	// Debugf writes to stderr only when --debug is set
	Debugf(string, ...interface{})
	// Stdout receives the gallery page when output path is "-"
	Stdout() io.Writer
}
