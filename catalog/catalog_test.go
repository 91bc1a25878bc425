package catalog_test

import (
	"strings"
	"testing"

	"github.com/allostudio/studiodata/catalog"
	"github.com/allostudio/studiodata/synthdata"
)

func TestExampleSourcesEmbedded(t *testing.T) {
	for _, examples := range [][]catalog.Example{catalog.StudioExamples(), catalog.PlaygroundExamples()} {
		if len(examples) == 0 {
			t.Fatalf("catalog is empty")
		}
		for _, e := range examples {
			if e.Source == "" {
				t.Errorf("example %v has an empty source", e.Name)
			}
		}
	}
}

func TestFind(t *testing.T) {
	e, ok := catalog.Find("fm")
	if !ok {
		t.Fatalf("Find returned not found for fm")
	}
	if e.Synth != "FM" || !strings.Contains(e.Source, "class FM") {
		t.Fatalf("Find returned an unexpected example: %v %v", e.Name, e.Synth)
	}
	if _, ok := catalog.Find("does-not-exist"); ok {
		t.Fatalf("Find returned found for a nonexistent example")
	}
}

func TestExampleSynthsAreRegistered(t *testing.T) {
	for _, e := range catalog.StudioExamples() {
		if e.Synth == "" {
			continue
		}
		if _, ok := synthdata.Registry().Bundle(e.Synth); !ok {
			t.Errorf("example %v references unregistered synth %v", e.Name, e.Synth)
		}
	}
}

func TestExampleCategoriesExist(t *testing.T) {
	known := make(map[string]bool)
	var walk func(categories []catalog.Category)
	walk = func(categories []catalog.Category) {
		for _, c := range categories {
			known[c.Name] = true
			walk(c.Children)
		}
	}
	walk(catalog.Categories())
	for _, examples := range [][]catalog.Example{catalog.StudioExamples(), catalog.PlaygroundExamples()} {
		for _, e := range examples {
			if !known[e.Category] {
				t.Errorf("example %v uses unknown category %v", e.Name, e.Category)
			}
		}
	}
}
