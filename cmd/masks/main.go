package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"lightscape-compositor/internal/batch"
	"lightscape-compositor/internal/imgio"
	"lightscape-compositor/internal/mask"
	"lightscape-compositor/internal/spatial"
)

func main() {
	mapFile := flag.String("map", "", "Path to the spatial map JSON")
	width := flag.Int("width", 0, "Source image width in pixels")
	height := flag.Int("height", 0, "Source image height in pixels")
	photo := flag.String("photo", "", "Source photo (alternative to -width/-height)")
	outputDir := flag.String("output", "out", "Output directory")
	gap := flag.Float64("gap", 0, "Cluster gap threshold in percentage points (default: 40)")
	feather := flag.Int("feather", 0, "Feather radius in pixels (default: hard edges)")

	flag.Parse()

	if *mapFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -map is required")
		os.Exit(1)
	}

	w, h := *width, *height
	if *photo != "" {
		img, err := imgio.DecodeFile(*photo)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		w, h = img.Bounds().Dx(), img.Bounds().Dy()
	}
	if w <= 0 || h <= 0 {
		fmt.Fprintln(os.Stderr, "Error: provide -photo or positive -width/-height")
		os.Exit(1)
	}

	m, err := batch.LoadMap(*mapFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if clamped := spatial.Normalize(&m); clamped > 0 {
		fmt.Printf("Clamped %d out-of-range coordinates\n", clamped)
	}

	groups, genErr := mask.Generate(m, w, h, mask.Options{GapThreshold: *gap, Feather: *feather})
	if genErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", genErr)
	}
	if len(groups) == 0 {
		fmt.Println("No mask groups produced.")
		if genErr != nil {
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	for i, g := range groups {
		path := filepath.Join(*outputDir, fmt.Sprintf("mask_%02d_%s.webp", i, g.FixtureType))
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		err = imgio.EncodeMaskWebP(f, g.Mask)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d placements (%s/%s)\n", path, len(g.Placements), g.FixtureType, g.SubOption)
	}
	fmt.Printf("Masks: %d groups, %d placements\n", len(groups), len(m.Placements))
}
