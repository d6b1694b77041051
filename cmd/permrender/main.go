// Command permrender renders the curated permeability figure set from a
// dataset JSON produced by the upstream analysis pipeline. It is a thin
// convenience wrapper over the plotting package, not part of its contract.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/membranelab/PermeabilityAnalysis/src/plotting"
)

func main() {
	var (
		dataPath  string
		outDir    string
		stylePath string
		logLevel  string
	)
	flag.StringVar(&dataPath, "data", "", "Path to dataset JSON (required)")
	flag.StringVar(&outDir, "out", "figures", "Output directory for rendered PNGs")
	flag.StringVar(&stylePath, "style", "", "Optional YAML stylesheet")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	plotting.SetLogLevel(logLevel)
	if dataPath == "" {
		fmt.Fprintln(os.Stderr, "usage: permrender -data results.json [-out figures] [-style style.yaml]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		plotting.Errorf("read dataset: %v", err)
		os.Exit(1)
	}
	var ds plotting.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		plotting.Errorf("parse dataset %s: %v", dataPath, err)
		os.Exit(1)
	}

	opts := plotting.DefaultProfileOptions()
	if stylePath != "" {
		sheet, err := plotting.LoadStyleSheet(stylePath)
		if err != nil {
			plotting.Errorf("stylesheet: %v", err)
			os.Exit(1)
		}
		opts = sheet.Apply(opts)
	}

	// The Savitzky-Golay collaborator is not linked here; raw traces only.
	if err := plotting.RenderAll(&ds, outDir, nil, opts); err != nil {
		plotting.Errorf("render: %v", err)
		os.Exit(1)
	}
}
