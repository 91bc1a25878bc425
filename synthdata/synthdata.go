// Package synthdata ships the built-in demo data of the studio: for each
// synth voice, the recorded note sequences and the parameter presets used by
// the audio-visual demos. The data is embedded in the binary and loaded into
// a read-only registry once at package initialization.
package synthdata

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/allostudio/studiodata"
)

//go:embed data/*.yml
var bundleFS embed.FS

// aliases lets callers use either the generic voice class name or the name
// derived from the original sequence file; both resolve to the same bundle.
var aliases = map[string]string{
	"synth1":    "SineEnv",
	"synth2":    "AddSyn",
	"synth4Vib": "FM",
	"synth8":    "Sub",
}

var registry = load()

func load() *studiodata.Registry {
	bundles := make(map[string]*studiodata.SynthData)
	fs.WalkDir(bundleFS, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(bundleFS, path)
		if err != nil {
			return nil
		}
		var bundle studiodata.SynthData
		if yaml.UnmarshalStrict(data, &bundle) == nil {
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			bundles[name] = &bundle
		}
		return nil
	})
	return studiodata.NewRegistry(bundles, aliases)
}

// Registry returns the registry of all built-in synth data. The returned
// registry is shared and read-only.
func Registry() *studiodata.Registry {
	return registry
}

// GetSequence looks up a built-in sequence by synth identifier and sequence
// name. The boolean is false when either is unknown.
func GetSequence(synthName, sequenceName string) (studiodata.SynthSequence, bool) {
	return registry.Sequence(synthName, sequenceName)
}

// GetPresets returns the built-in presets of the given synth, in declaration
// order. The result is empty, never missing, for an unknown identifier.
func GetPresets(synthName string) []studiodata.SynthPreset {
	return registry.Presets(synthName)
}

// GetPreset looks up a single built-in preset by synth identifier and preset
// name. The boolean is false when either is unknown.
func GetPreset(synthName, presetName string) (studiodata.SynthPreset, bool) {
	return registry.Preset(synthName, presetName)
}

// The per-domain accessors below give direct access to the raw bundles for
// callers that do not want to go through the lookup functions.

func bundle(name string) *studiodata.SynthData {
	b, _ := registry.Bundle(name)
	return b
}

// SineEnv returns the sine-envelope demo bundle.
func SineEnv() *studiodata.SynthData { return bundle("SineEnv") }

// FM returns the frequency-modulation demo bundle, also registered as
// "synth4Vib".
func FM() *studiodata.SynthData { return bundle("FM") }

// AddSyn returns the additive-synthesis demo bundle.
func AddSyn() *studiodata.SynthData { return bundle("AddSyn") }

// Sub returns the subtractive-synthesis demo bundle, also registered as
// "synth8".
func Sub() *studiodata.SynthData { return bundle("Sub") }

// Integrated returns the mixed-voice demo bundle.
func Integrated() *studiodata.SynthData { return bundle("Integrated") }
