package studiodata

import "sort"

type (
	// SynthNote is one scheduled audio/visual event in a sequence. Voice names
	// the synthesis program that interprets Params; the meaning of each
	// position in Params is documented by the ParamNames of the owning
	// sequence. The module does not check that len(Params) matches the
	// sequence's ParamNames; the shipped data is expected to keep them in
	// sync.
	SynthNote struct {
		Time     float64   `json:"time"`
		Duration float64   `json:"duration"`
		Voice    string    `json:"voice"`
		Params   []float64 `yaml:",flow" json:"params"`
	}

	// SynthSequence is a named timeline of notes for one demo performance.
	// Notes are kept in declaration order, which is not necessarily sorted by
	// Time; use SortedNotes when a time-ordered view is needed.
	SynthSequence struct {
		Name       string      `json:"name"`
		ParamNames []string    `yaml:",flow" json:"paramNames"`
		Notes      []SynthNote `json:"notes"`
	}

	// SynthPreset is a named snapshot of parameter values for initializing a
	// voice's controls. Unlike SynthNote.Params, the values are keyed by
	// parameter name.
	SynthPreset struct {
		Name   string             `json:"name"`
		Params map[string]float64 `yaml:",flow" json:"params"`
	}

	// SynthData is the bundle registered under one synth identifier: the
	// sequences recorded for that voice and the presets for its controls.
	SynthData struct {
		Sequences []SynthSequence `json:"sequences"`
		Presets   []SynthPreset   `json:"presets"`
	}
)

// EndTime returns the time at which the note stops sounding.
func (n SynthNote) EndTime() float64 {
	return n.Time + n.Duration
}

// Copy makes a deep copy of a SynthNote.
func (n *SynthNote) Copy() SynthNote {
	params := make([]float64, len(n.Params))
	copy(params, n.Params)
	return SynthNote{Time: n.Time, Duration: n.Duration, Voice: n.Voice, Params: params}
}

// Copy makes a deep copy of a SynthSequence.
func (s *SynthSequence) Copy() SynthSequence {
	paramNames := make([]string, len(s.ParamNames))
	copy(paramNames, s.ParamNames)
	notes := make([]SynthNote, len(s.Notes))
	for i, n := range s.Notes {
		notes[i] = n.Copy()
	}
	return SynthSequence{Name: s.Name, ParamNames: paramNames, Notes: notes}
}

// Duration returns the end time of the last note to stop sounding, in seconds
// from sequence start. Notes are not assumed to be time-sorted, so every note
// is considered. An empty sequence has a duration of 0.
func (s SynthSequence) Duration() float64 {
	ret := 0.0
	for _, n := range s.Notes {
		if e := n.EndTime(); e > ret {
			ret = e
		}
	}
	return ret
}

// SortedNotes returns a copy of the notes sorted by start time, for consumers
// that schedule playback. The sort is stable so simultaneous notes keep their
// declaration order. The sequence itself is left untouched.
func (s SynthSequence) SortedNotes() []SynthNote {
	notes := make([]SynthNote, len(s.Notes))
	for i, n := range s.Notes {
		notes[i] = n.Copy()
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Time < notes[j].Time })
	return notes
}

// Copy makes a deep copy of a SynthPreset.
func (p *SynthPreset) Copy() SynthPreset {
	params := make(map[string]float64, len(p.Params))
	for k, v := range p.Params {
		params[k] = v
	}
	return SynthPreset{Name: p.Name, Params: params}
}

// Copy makes a deep copy of a SynthData bundle.
func (d *SynthData) Copy() SynthData {
	sequences := make([]SynthSequence, len(d.Sequences))
	for i, s := range d.Sequences {
		sequences[i] = s.Copy()
	}
	presets := make([]SynthPreset, len(d.Presets))
	for i, p := range d.Presets {
		presets[i] = p.Copy()
	}
	return SynthData{Sequences: sequences, Presets: presets}
}
