// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui is how gridgen talks to the terminal: regular output goes to
stdout, while warnings and (optional) debug lines go to stderr.
*/
package ui
