package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lightscape-compositor/internal/batch"
	"lightscape-compositor/internal/config"
	"lightscape-compositor/internal/mask"
	"lightscape-compositor/internal/render"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	photo := flag.String("photo", "", "Path to a single daytime photo")
	mapFile := flag.String("map", "", "Path to the spatial map JSON for -photo")
	jobList := flag.String("jobs", "", "Path to a jobs.json file (array of {name, photo, map})")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 92)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	withMasks := flag.Bool("masks", false, "Also write inpainting masks per fixture group")
	withMarkers := flag.Bool("markers", false, "Also write a marker-overlaid guide image")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Quality:   *quality,
		Workers:   *workers,
	})

	jobs, err := collectJobs(*photo, *mapFile, *jobList)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if len(jobs) == 0 {
		fmt.Println("No photos to process. Use -photo/-map or -jobs.")
		os.Exit(0)
	}

	glow, err := cfg.GlowOverrides()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Workers:     cfg.Workers,
		JPEGQuality: cfg.JPEGQuality,
		SpritePath:  cfg.SpritePath,
		SpriteScale: cfg.SpriteScale,
		MaskOpts: mask.Options{
			GapThreshold: cfg.GapThreshold,
			Feather:      cfg.MaskFeather,
		},
		Render: render.Options{
			Glow: glow,
			Suppress: render.SuppressConfig{
				BeamRadiusRatio: cfg.BeamRadiusRatio,
				EaveBandRatio:   cfg.EaveBandRatio,
				EaveClamp:       cfg.EaveClamp,
			},
		},
		WriteMasks:   *withMasks,
		WriteMarkers: *withMarkers,
	}

	fmt.Printf("Lightscape compositor\n")
	fmt.Printf("Photos: %d, Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batchCfg, jobs)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			fmt.Printf("  %s: %s\n", r.Name, r.Error)
		}
	}
	fmt.Printf("Composited: %d/%d\n", success, len(jobs))

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func collectJobs(photo, mapFile, jobList string) ([]batch.Job, error) {
	if jobList != "" {
		return batch.LoadJobs(jobList)
	}
	if photo == "" || mapFile == "" {
		return nil, nil
	}
	name := strings.TrimSuffix(filepath.Base(photo), filepath.Ext(photo))
	return []batch.Job{{Name: name, PhotoPath: photo, MapPath: mapFile}}, nil
}
