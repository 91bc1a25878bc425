// Package catalog lists the example programs shipped with the studio and the
// category taxonomy the front-end uses to present them. Program sources are
// embedded as opaque text; this package does not parse, validate or execute
// them.
package catalog

import (
	"embed"
	"io/fs"
)

//go:embed programs/studio/* programs/playground/*
var programFS embed.FS

type (
	// Example is one catalogued example program. Source holds the embedded
	// program text; Synth names the demo-data bundle the example plays, if
	// any (see the synthdata package).
	Example struct {
		Name     string
		Title    string
		Category string
		Synth    string
		Source   string
	}

	// Category is one node of the catalog taxonomy tree.
	Category struct {
		Name     string
		Children []Category
	}
)

// source reads an embedded program body. A missing file yields an empty
// source rather than a failure; the catalog tests check that the shipped
// files are all present.
func source(path string) string {
	data, err := fs.ReadFile(programFS, path)
	if err != nil {
		return ""
	}
	return string(data)
}

var studioExamples = []Example{
	{Name: "sine_env", Title: "Sine + Envelope", Category: "synthesis", Synth: "SineEnv", Source: source("programs/studio/sine_env.cpp")},
	{Name: "fm", Title: "Frequency Modulation", Category: "synthesis", Synth: "FM", Source: source("programs/studio/fm.cpp")},
	{Name: "add_syn", Title: "Additive Synthesis", Category: "synthesis", Synth: "AddSyn", Source: source("programs/studio/add_syn.cpp")},
	{Name: "sub_syn", Title: "Subtractive Synthesis", Category: "synthesis", Synth: "Sub", Source: source("programs/studio/sub_syn.cpp")},
	{Name: "integrated", Title: "Integrated AV Demo", Category: "integrated", Synth: "Integrated", Source: source("programs/studio/integrated.cpp")},
}

var playgroundExamples = []Example{
	{Name: "orbits", Title: "Orbits", Category: "graphics", Source: source("programs/playground/orbits.cpp")},
	{Name: "flow_field", Title: "Flow Field", Category: "graphics", Source: source("programs/playground/flow_field.cpp")},
	{Name: "wave_grid", Title: "Wave Grid", Category: "graphics", Source: source("programs/playground/wave_grid.cpp")},
}

var categories = []Category{
	{Name: "audio", Children: []Category{
		{Name: "synthesis"},
		{Name: "integrated"},
	}},
	{Name: "graphics"},
}

// StudioExamples returns the studio example programs in catalog order. The
// returned slice is shared and read-only.
func StudioExamples() []Example {
	return studioExamples
}

// PlaygroundExamples returns the playground example programs in catalog
// order. The returned slice is shared and read-only.
func PlaygroundExamples() []Example {
	return playgroundExamples
}

// Categories returns the taxonomy tree, studio categories first.
func Categories() []Category {
	return categories
}

// Find looks up an example by name, searching the studio catalog first and
// then the playground. The first example with a matching name wins; absence
// is reported through the second return value.
func Find(name string) (Example, bool) {
	for _, e := range studioExamples {
		if e.Name == name {
			return e, true
		}
	}
	for _, e := range playgroundExamples {
		if e.Name == name {
			return e, true
		}
	}
	return Example{}, false
}
