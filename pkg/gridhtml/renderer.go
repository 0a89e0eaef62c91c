// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package gridhtml

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

// GridTemplateID names the built-in gallery grid template
const GridTemplateID = "grid"

var (
	//go:embed grid.html.tpl
	gridTemplateSrc string

	builtinTemplates = template.Must(template.New("gridgen").Parse(gridTemplateSrc))
)

// Bindings are the named values a template can refer to
type Bindings map[string]interface{}

// Renderer fills a named template with bindings
type Renderer interface {
	Render(templateID string, bindings Bindings) (string, error)
}

type HTMLRenderer struct {
	templates *template.Template
}

var _ Renderer = HTMLRenderer{}

func NewHTMLRenderer() HTMLRenderer {
	return HTMLRenderer{builtinTemplates}
}

func (r HTMLRenderer) Render(templateID string, bindings Bindings) (string, error) {
	tpl := r.templates.Lookup(templateID)
	if tpl == nil {
		return "", fmt.Errorf("Unknown template '%s'", templateID)
	}

	var buf bytes.Buffer

	err := tpl.Execute(&buf, bindings)
	if err != nil {
		return "", fmt.Errorf("Executing template '%s': %s", templateID, err)
	}

	return buf.String(), nil
}
