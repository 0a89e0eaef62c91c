// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package gridhtml renders gallery entries into the HTML grid fragment that
documentation pages include.

Layout (three columns, 1px gap, hover effect) is fixed by the built-in
"grid" template. Rendering goes through the Renderer interface; the
default HTMLRenderer is backed by html/template.
*/
package gridhtml
