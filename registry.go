package studiodata

import "sort"

// Registry maps synth identifiers to their data bundles. Several identifiers
// may alias the same bundle, e.g. both the generic voice class name and the
// name derived from the original sequence file. A Registry is built once and
// never mutated afterwards, so it is safe for concurrent readers without
// locking.
type Registry struct {
	bundles map[string]*SynthData
}

// NewRegistry builds a registry from the given bundles. For every alias key
// in aliases, the alias is registered to point to the same bundle as the
// named target; aliases whose target bundle does not exist are ignored.
func NewRegistry(bundles map[string]*SynthData, aliases map[string]string) *Registry {
	all := make(map[string]*SynthData, len(bundles)+len(aliases))
	for name, bundle := range bundles {
		all[name] = bundle
	}
	for alias, target := range aliases {
		if bundle, ok := bundles[target]; ok {
			all[alias] = bundle
		}
	}
	return &Registry{bundles: all}
}

// Names returns every registered identifier, aliases included, in sorted
// order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.bundles))
	for name := range r.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bundle returns the bundle registered under synthName, or false if the
// identifier is unknown.
func (r *Registry) Bundle(synthName string) (*SynthData, bool) {
	if r == nil {
		return nil, false
	}
	bundle, ok := r.bundles[synthName]
	return bundle, ok
}

// Sequence looks up a sequence by synth identifier and sequence name. The
// match is exact and case-sensitive; if a bundle contains several sequences
// with the same name, the first one in declaration order wins. An unknown
// synth or sequence name is reported through the second return value, never
// through a panic.
func (r *Registry) Sequence(synthName, sequenceName string) (SynthSequence, bool) {
	bundle, ok := r.Bundle(synthName)
	if !ok {
		return SynthSequence{}, false
	}
	for _, seq := range bundle.Sequences {
		if seq.Name == sequenceName {
			return seq, true
		}
	}
	return SynthSequence{}, false
}

// Presets returns the presets of the bundle registered under synthName, in
// declaration order. For an unknown identifier the result is an empty list,
// so the caller can always iterate the result.
func (r *Registry) Presets(synthName string) []SynthPreset {
	bundle, ok := r.Bundle(synthName)
	if !ok {
		return []SynthPreset{}
	}
	return bundle.Presets
}

// Preset looks up a single preset by synth identifier and preset name. As
// with Sequence, the first preset with a matching name wins and absence is
// reported through the second return value.
func (r *Registry) Preset(synthName, presetName string) (SynthPreset, bool) {
	for _, preset := range r.Presets(synthName) {
		if preset.Name == presetName {
			return preset, true
		}
	}
	return SynthPreset{}, false
}
