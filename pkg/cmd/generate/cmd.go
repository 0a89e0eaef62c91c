// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/k14s/difflib"
	"github.com/spf13/cobra"
	"github.com/visgl/gridgen/pkg/cmd/ui"
	"github.com/visgl/gridgen/pkg/files"
	"github.com/visgl/gridgen/pkg/gallery"
	"github.com/visgl/gridgen/pkg/gridhtml"
	"github.com/visgl/gridgen/pkg/version"
)

type Options struct {
	ConfigFlags ConfigFlags
	Check       bool
	Debug       bool

	// UI and Renderer default to a TTY and the built-in HTML renderer
	UI       ui.UI
	Renderer gridhtml.Renderer
}

type Output struct {
	Entries []gallery.Entry
	HTML    string
	Err     error
}

func NewOptions() *Options {
	return &Options{}
}

func NewCmd(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate gallery grid HTML from example files",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Check, "check", false, "Verify that output file is up to date instead of writing it")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	o.ConfigFlags.Set(cmd)
	return cmd
}

func (o *Options) Run() error {
	if o.UI == nil {
		o.UI = ui.NewTTY(o.Debug)
	}
	t1 := time.Now()

	defer func() {
		o.UI.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("Getting working directory: %s", err)
	}

	conf, err := o.ConfigFlags.Config(wd)
	if err != nil {
		return err
	}

	err = conf.Validate(version.Version)
	if err != nil {
		return err
	}

	o.UI.Debugf("examples: %s (%s)\noutput: %s\n", conf.ExamplesDir, conf.Pattern, conf.OutputPath)

	slugs, err := gallery.DiscoverExamples(conf.ExamplesDir, conf.Pattern)
	if err != nil {
		return err
	}

	o.UI.Debugf("discovered %d example(s)\n", len(slugs))

	if len(slugs) == 0 {
		o.UI.Warnf("No files in '%s' matched '%s', gallery will be empty\n", conf.ExamplesDir, conf.Pattern)
	}

	out := o.RunWithSlugs(slugs)
	if out.Err != nil {
		return out.Err
	}

	file := files.NewOutputFile(conf.OutputPath, []byte(out.HTML))

	if o.Check {
		return o.check(file)
	}
	return o.write(file, conf.Atomic)
}

// RunWithSlugs builds gallery entries for already discovered slugs and renders them
func (o *Options) RunWithSlugs(slugs []string) Output {
	renderer := o.Renderer
	if renderer == nil {
		renderer = gridhtml.NewHTMLRenderer()
	}

	entries := gallery.NewEntries(slugs)

	html, err := gridhtml.RenderGallery(entries, renderer)
	if err != nil {
		return Output{Err: err}
	}

	return Output{Entries: entries, HTML: html}
}

func (o *Options) write(file files.OutputFile, atomic bool) error {
	if file.Path() == files.StdoutPath {
		_, err := file.WriteTo(o.UI.Stdout())
		return err
	}

	o.UI.Debugf("creating: %s\n", file.Path())

	if atomic {
		return file.CreateAtomic()
	}
	return file.Create()
}

func (o *Options) check(file files.OutputFile) error {
	if file.Path() == files.StdoutPath {
		return fmt.Errorf("Expected output to be a file when checking")
	}

	existing, found, err := file.Existing()
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("Expected output file '%s' to exist", file.Path())
	}

	if string(existing) == string(file.Bytes()) {
		o.UI.Debugf("up to date: %s\n", file.Path())
		return nil
	}

	diff := difflib.PPDiff(strings.Split(string(existing), "\n"), strings.Split(string(file.Bytes()), "\n"))
	o.UI.Printf("%s\n", diff)

	return fmt.Errorf("Expected output file '%s' to be up to date (run gridgen to regenerate it)", file.Path())
}
