// Package export renders the studio demo data into the artifacts the
// front-end and external tools consume: a JavaScript data module with its
// TypeScript declaration, and standard MIDI files of the demo sequences.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/allostudio/studiodata"
)

//go:embed templates/*
var templateFS embed.FS

// Exporter renders the registry through a set of templates, one output file
// per template, keyed by the template's extension.
type Exporter struct {
	Template *template.Template
}

// New returns a new exporter using the default embedded templates.
func New() (*Exporter, error) {
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.*")
	if err != nil {
		return nil, fmt.Errorf(`could not create templates: %v`, err)
	}
	return &Exporter{Template: tmpl}, nil
}

// NewFromTemplates returns an exporter using the templates found in the
// given directory instead of the embedded ones.
func NewFromTemplates(templateDirectory string) (*Exporter, error) {
	globPtrn := filepath.Join(templateDirectory, "*.*")
	tmpl, err := template.New("base").Funcs(sprig.TxtFuncMap()).ParseGlob(globPtrn)
	if err != nil {
		return nil, fmt.Errorf(`could not create template based on directory "%v": %v`, templateDirectory, err)
	}
	return &Exporter{Template: tmpl}, nil
}

// dataModule is the data handed to the templates: every registered
// identifier (aliases included) and the bundle each resolves to.
type dataModule struct {
	Names   []string
	Bundles map[string]*studiodata.SynthData
}

// Registry renders every template against the full registry and returns the
// populated outputs keyed by extension (e.g. ".js", ".d.ts").
func (e *Exporter) Registry(reg *studiodata.Registry) (map[string]string, error) {
	extensions := []string{".js", ".d.ts"}
	names := reg.Names()
	bundles := make(map[string]*studiodata.SynthData, len(names))
	for _, name := range names {
		bundle, ok := reg.Bundle(name)
		if !ok {
			continue
		}
		bundles[name] = bundle
	}
	data := dataModule{Names: names, Bundles: bundles}
	retmap := map[string]string{}
	for _, extension := range extensions {
		populated, err := e.render("bundles"+extension, data)
		if err != nil {
			return nil, fmt.Errorf(`could not execute template "bundles%v": %v`, extension, err)
		}
		retmap[extension] = populated
	}
	return retmap, nil
}

func (e *Exporter) render(templateName string, data interface{}) (string, error) {
	result := bytes.NewBufferString("")
	err := e.Template.ExecuteTemplate(result, templateName, data)
	return result.String(), err
}
