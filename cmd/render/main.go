package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solidview/internal/batch"
	"solidview/internal/config"
	"solidview/internal/logx"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json, .toml or .yaml config file")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 512)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 512)")
	frames := flag.Int("frames", 0, "Turntable frames per primitive (default: 8)")
	format := flag.String("format", "", "Image format: webp, tga or png (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	primitives := flag.String("primitives", "", "Comma-separated primitives (default: all)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	log := logx.Init(os.Stderr, *verbose)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:  *outputDir,
		Width:      *width,
		Height:     *height,
		Frames:     *frames,
		Format:     *format,
		Workers:    *workers,
		Primitives: *primitives,
	})

	kinds, err := cfg.Kinds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	outFormat, err := cfg.OutputFormat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	jobs := batch.Jobs(kinds, cfg.Frames)

	fmt.Printf("Primitive turntable renderer → %s\n", outFormat)
	fmt.Printf("Primitives: %d, Frames: %d, Size: %dx%d, Workers: %d\n",
		len(kinds), len(jobs), cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		PitchDeg:    cfg.PitchDeg,
		Format:      outFormat,
		Workers:     cfg.Workers,
		Params:      cfg.Shapes,
		Logger:      log,
	}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s #%d: %s\n", e.Kind, e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Warn("create output dir", "path", cfg.OutputDir, "err", err)
	}
	if err := batch.WriteManifest(manifestPath, cfg.PitchDeg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
