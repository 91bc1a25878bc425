package studiodata_test

import (
	"reflect"
	"testing"

	"github.com/allostudio/studiodata"
)

func testRegistry() *studiodata.Registry {
	bundles := map[string]*studiodata.SynthData{
		"Blip": {
			Sequences: []studiodata.SynthSequence{
				{
					Name:       "demo",
					ParamNames: []string{"amplitude", "frequency"},
					Notes: []studiodata.SynthNote{
						{Time: 0, Duration: 0.5, Voice: "Blip", Params: []float64{0.3, 220}},
						{Time: 0.5, Duration: 0.25, Voice: "Blip", Params: []float64{0.3, 330}},
					},
				},
				{Name: "empty", ParamNames: []string{"amplitude", "frequency"}},
			},
			Presets: []studiodata.SynthPreset{
				{Name: "default", Params: map[string]float64{"amplitude": 0.3, "frequency": 220}},
				{Name: "loud", Params: map[string]float64{"amplitude": 0.9, "frequency": 220}},
			},
		},
		"Hum": {
			Sequences: []studiodata.SynthSequence{
				{Name: "drone", ParamNames: []string{"amplitude"}},
			},
		},
	}
	aliases := map[string]string{
		"blip2": "Blip",
		"lost":  "NoSuchBundle",
	}
	return studiodata.NewRegistry(bundles, aliases)
}

func TestSequenceLookup(t *testing.T) {
	r := testRegistry()
	seq, ok := r.Sequence("Blip", "demo")
	if !ok {
		t.Fatalf("Sequence returned not found for existing sequence")
	}
	if seq.Name != "demo" || len(seq.Notes) != 2 || seq.Notes[1].Params[1] != 330 {
		t.Fatalf("Sequence returned wrong sequence: %v", seq)
	}
	if _, ok := r.Sequence("Blip", "does-not-exist"); ok {
		t.Fatalf("Sequence returned found for a nonexistent sequence name")
	}
	if _, ok := r.Sequence("NoSuchSynth", "demo"); ok {
		t.Fatalf("Sequence returned found for a nonexistent synth")
	}
	if seq, ok := r.Sequence("Blip", "Demo"); ok {
		t.Fatalf("Sequence match should be case-sensitive, got %v", seq)
	}
}

func TestFirstMatchWins(t *testing.T) {
	bundles := map[string]*studiodata.SynthData{
		"Dup": {
			Sequences: []studiodata.SynthSequence{
				{Name: "twice", ParamNames: []string{"a"}},
				{Name: "twice", ParamNames: []string{"b"}},
			},
			Presets: []studiodata.SynthPreset{
				{Name: "twice", Params: map[string]float64{"a": 1}},
				{Name: "twice", Params: map[string]float64{"b": 2}},
			},
		},
	}
	r := studiodata.NewRegistry(bundles, nil)
	seq, ok := r.Sequence("Dup", "twice")
	if !ok || !reflect.DeepEqual(seq.ParamNames, []string{"a"}) {
		t.Fatalf("expected the first declared sequence to win, got %v", seq)
	}
	preset, ok := r.Preset("Dup", "twice")
	if !ok || preset.Params["a"] != 1 {
		t.Fatalf("expected the first declared preset to win, got %v", preset)
	}
}

func TestPresetsNeverMissing(t *testing.T) {
	r := testRegistry()
	presets := r.Presets("NoSuchSynth")
	if presets == nil {
		t.Fatalf("Presets returned nil for an unknown synth")
	}
	if len(presets) != 0 {
		t.Fatalf("Presets returned %v presets for an unknown synth", len(presets))
	}
	presets = r.Presets("Hum")
	if len(presets) != 0 {
		t.Fatalf("Presets should return an empty list for a bundle without presets, got %v", presets)
	}
	presets = r.Presets("Blip")
	if len(presets) != 2 || presets[0].Name != "default" || presets[1].Name != "loud" {
		t.Fatalf("Presets did not return the declared presets in order: %v", presets)
	}
}

func TestPresetLookup(t *testing.T) {
	r := testRegistry()
	preset, ok := r.Preset("Blip", "loud")
	if !ok || preset.Params["amplitude"] != 0.9 {
		t.Fatalf("Preset returned wrong preset: %v", preset)
	}
	if _, ok := r.Preset("Blip", "does-not-exist"); ok {
		t.Fatalf("Preset returned found for a nonexistent preset name")
	}
	if _, ok := r.Preset("NoSuchSynth", "loud"); ok {
		t.Fatalf("Preset returned found for a nonexistent synth")
	}
}

func TestAliases(t *testing.T) {
	r := testRegistry()
	direct, ok := r.Bundle("Blip")
	if !ok {
		t.Fatalf("Bundle returned not found for existing synth")
	}
	aliased, ok := r.Bundle("blip2")
	if !ok {
		t.Fatalf("Bundle returned not found for alias")
	}
	if direct != aliased {
		t.Fatalf("alias should resolve to the same bundle object")
	}
	seq1, _ := r.Sequence("Blip", "demo")
	seq2, _ := r.Sequence("blip2", "demo")
	if !reflect.DeepEqual(seq1, seq2) {
		t.Fatalf("alias lookup returned a different sequence")
	}
	if _, ok := r.Bundle("lost"); ok {
		t.Fatalf("alias to a nonexistent bundle should not be registered")
	}
}

func TestNames(t *testing.T) {
	r := testRegistry()
	expected := []string{"Blip", "Hum", "blip2"}
	if got := r.Names(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("Names returned %v, expected %v", got, expected)
	}
}

func TestLookupIdempotence(t *testing.T) {
	r := testRegistry()
	seqA, okA := r.Sequence("Blip", "demo")
	seqB, okB := r.Sequence("Blip", "demo")
	if okA != okB || !reflect.DeepEqual(seqA, seqB) {
		t.Fatalf("repeated Sequence calls returned different results")
	}
	if !reflect.DeepEqual(r.Presets("Blip"), r.Presets("Blip")) {
		t.Fatalf("repeated Presets calls returned different results")
	}
	presetA, _ := r.Preset("Blip", "default")
	presetB, _ := r.Preset("Blip", "default")
	if !reflect.DeepEqual(presetA, presetB) {
		t.Fatalf("repeated Preset calls returned different results")
	}
}

func TestNilRegistry(t *testing.T) {
	var r *studiodata.Registry
	if _, ok := r.Sequence("Blip", "demo"); ok {
		t.Fatalf("nil registry should report not found")
	}
	if presets := r.Presets("Blip"); presets == nil || len(presets) != 0 {
		t.Fatalf("nil registry should return an empty preset list, got %v", presets)
	}
	if names := r.Names(); len(names) != 0 {
		t.Fatalf("nil registry should have no names, got %v", names)
	}
}
