package main

import (
	"flag"
	"fmt"
	"os"

	"lightscape-compositor/internal/batch"
	"lightscape-compositor/internal/imgio"
	"lightscape-compositor/internal/marker"
	"lightscape-compositor/internal/spatial"
)

func main() {
	photo := flag.String("photo", "", "Path to the source photo")
	mapFile := flag.String("map", "", "Path to the spatial map JSON")
	output := flag.String("output", "markers.jpg", "Output image path")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (default: 92)")

	flag.Parse()

	if *photo == "" || *mapFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -photo and -map are required")
		os.Exit(1)
	}

	img, err := imgio.DecodeFile(*photo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
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

	out := marker.Overlay(img, m)
	if err := imgio.WriteFile(*output, out, *quality); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Markers: %s (%d placements)\n", *output, len(m.Placements))
}
