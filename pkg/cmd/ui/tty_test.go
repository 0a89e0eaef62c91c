// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/visgl/gridgen/pkg/cmd/ui"
)

func TestTTY(t *testing.T) {
	for _, debug := range []bool{false, true} {
		var stdout, stderr bytes.Buffer
		tty := ui.NewCustomWriterTTY(debug, &stdout, &stderr)

		tty.Printf("out %d\n", 1)
		tty.Warnf("warn %d\n", 2)
		tty.Debugf("debug %d\n", 3)

		require.Equal(t, "out 1\n", stdout.String())
		require.Same(t, &stdout, tty.Stdout())

		if debug {
			require.Equal(t, "Warning: warn 2\ndebug 3\n", stderr.String())
		} else {
			require.Equal(t, "Warning: warn 2\n", stderr.String())
		}
	}
}
