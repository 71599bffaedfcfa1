package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// MaskEntry describes one inpainting mask: the metadata the generation
// service needs to build a prompt for that region.
type MaskEntry struct {
	File        string   `json:"file"`
	FixtureType string   `json:"fixture_type"`
	SubOption   string   `json:"sub_option,omitempty"`
	Placements  []string `json:"placements"`
}

// Entry represents one processed photo in the output manifest.
type Entry struct {
	Name        string      `json:"name"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	AspectRatio string      `json:"aspect_ratio"`
	Placements  int         `json:"placements"`
	Composite   string      `json:"composite,omitempty"`
	Markers     string      `json:"markers,omitempty"`
	Masks       []MaskEntry `json:"masks,omitempty"`
}

// WriteManifest writes manifest.json for all successful results.
func WriteManifest(path string, results []Result) error {
	var entries []Entry
	for _, r := range results {
		if r.Success {
			entries = append(entries, r.Manifest)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return nil
}
