package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/allostudio/studiodata/export"
	"github.com/allostudio/studiodata/synthdata"
	"github.com/allostudio/studiodata/version"
)

func main() {
	safe := flag.Bool("n", false, "Never overwrite files; if file already exists and would be overwritten, give an error.")
	list := flag.Bool("l", false, "Do not write files; list the registry contents instead.")
	stdout := flag.Bool("s", false, "Do not write files; write to standard output instead.")
	help := flag.Bool("h", false, "Show help.")
	jsonOut := flag.Bool("j", false, "Output the bundle of each given synth as a .json file.")
	yamlOut := flag.Bool("y", false, "Output the bundle of each given synth as a .yml file.")
	midiOut := flag.Bool("m", false, "Output every sequence of each given synth as a .mid file.")
	moduleOut := flag.Bool("js", false, "Output the whole registry as a JavaScript data module with its TypeScript declaration. Synth names are not needed.")
	tempo := flag.Float64("bpm", 120, "Tempo used when writing .mid files.")
	tmplDir := flag.String("t", "", "When writing the data module, use the templates in this directory instead of the embedded templates.")
	outPath := flag.String("o", "", "Directory or filename where to write the outputs. Directory and its parents are created if needed. By default, everything is placed in the current working directory.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if (flag.NArg() == 0 && !*moduleOut && !*list) || *help {
		flag.Usage()
		os.Exit(0)
	}
	if !*jsonOut && !*yamlOut && !*midiOut && !*moduleOut {
		// if the user gives nothing to output, the default behaviour is to
		// write the json bundles
		*jsonOut = true
	}
	registry := synthdata.Registry()
	if *list {
		for _, name := range registry.Names() {
			bundle, ok := registry.Bundle(name)
			if !ok {
				continue
			}
			fmt.Printf("%v\n", name)
			for _, seq := range bundle.Sequences {
				fmt.Printf("  sequence %v (%v notes, %.2f s)\n", seq.Name, len(seq.Notes), seq.Duration())
			}
			for _, preset := range bundle.Presets {
				fmt.Printf("  preset %v (%v params)\n", preset.Name, len(preset.Params))
			}
		}
		os.Exit(0)
	}
	output := func(filename string, extension string, contents []byte) error {
		if *stdout {
			fmt.Print(string(contents))
			return nil
		}
		_, name := filepath.Split(filename)
		var dir string
		if *outPath != "" {
			// check if it's an already existing directory and the user just forgot trailing slash
			if info, err := os.Stat(*outPath); err == nil && info.IsDir() {
				dir = *outPath
			} else {
				outdir, outname := filepath.Split(*outPath)
				if outdir != "" {
					dir = outdir
				}
				if outname != "" {
					name = outname
				}
			}
		}
		if dir == "" {
			var err error
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("could not get working directory, specify the output directory explicitly: %v", err)
			}
		}
		name = strings.TrimSuffix(name, filepath.Ext(name)) + extension
		f := filepath.Join(dir, name)
		original, err := os.ReadFile(f)
		if err == nil {
			if bytes.Equal(original, contents) {
				return nil // no need to update
			}
			if *safe {
				return fmt.Errorf("file %v would be overwritten", f)
			}
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %v", dir, err)
		}
		if err := os.WriteFile(f, contents, 0644); err != nil {
			return fmt.Errorf("could not write file %v: %v", f, err)
		}
		return nil
	}
	process := func(synthName string) error {
		bundle, ok := registry.Bundle(synthName)
		if !ok {
			return fmt.Errorf("unknown synth %v", synthName)
		}
		if *jsonOut {
			jsonBundle, err := json.MarshalIndent(bundle, "", "  ")
			if err != nil {
				return fmt.Errorf("could not marshal the bundle as json file: %v", err)
			}
			if err := output(synthName, ".json", jsonBundle); err != nil {
				return fmt.Errorf("error outputting json file: %v", err)
			}
		}
		if *yamlOut {
			yamlBundle, err := yaml.Marshal(bundle)
			if err != nil {
				return fmt.Errorf("could not marshal the bundle as yaml file: %v", err)
			}
			if err := output(synthName, ".yml", yamlBundle); err != nil {
				return fmt.Errorf("error outputting yaml file: %v", err)
			}
		}
		if *midiOut {
			for _, seq := range bundle.Sequences {
				s, err := export.SequenceSMF(seq, *tempo)
				if err != nil {
					return fmt.Errorf("could not convert sequence %v: %v", seq.Name, err)
				}
				var buf bytes.Buffer
				if _, err := s.WriteTo(&buf); err != nil {
					return fmt.Errorf("could not write midi for sequence %v: %v", seq.Name, err)
				}
				if err := output(synthName+"_"+seq.Name, ".mid", buf.Bytes()); err != nil {
					return fmt.Errorf("error outputting midi file: %v", err)
				}
			}
		}
		return nil
	}
	retval := 0
	if *moduleOut {
		var exporter *export.Exporter
		var err error
		if *tmplDir != "" {
			exporter, err = export.NewFromTemplates(*tmplDir)
		} else {
			exporter, err = export.New()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating exporter: %v\n", err)
			os.Exit(1)
		}
		rendered, err := exporter.Registry(registry)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exporting data module failed: %v\n", err)
			retval = 1
		} else {
			for extension, code := range rendered {
				if err := output("bundles", extension, []byte(code)); err != nil {
					fmt.Fprintf(os.Stderr, "error outputting %v file: %v\n", extension, err)
					retval = 1
				}
			}
		}
	}
	for _, param := range flag.Args() {
		if err := process(param); err != nil {
			fmt.Fprintf(os.Stderr, "could not process synth %v: %v\n", param, err)
			retval = 1
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Studio demo-data exporter. Writes the built-in synth bundles as .json, .yml or .mid files, or the whole registry as a front-end data module.\nUsage: %s [flags] [synth ...]\n", os.Args[0])
	flag.PrintDefaults()
}
