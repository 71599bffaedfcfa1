package batch

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"
	"testing"

	"lightscape-compositor/internal/imgio"
)

const mapJSON = `{
	"features": [
		{"id": "f1", "type": "corner", "horizontalPosition": 5},
		{"id": "f2", "type": "door", "horizontalPosition": 50, "label": "front door"}
	],
	"placements": [
		{"id": "p1", "fixtureType": "up", "horizontalPosition": 30, "anchor": "left of front door"},
		{"id": "p2", "fixtureType": "up", "horizontalPosition": 70},
		{"id": "p3", "fixtureType": "path", "horizontalPosition": 20, "verticalPosition": 90}
	]
}`

func writeTestInputs(t *testing.T) (photoPath, mapPath string) {
	t.Helper()
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 320, 240))
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = 180
		img.Pix[i+1] = 170
		img.Pix[i+2] = 150
		img.Pix[i+3] = 255
	}
	photoPath = filepath.Join(dir, "house.jpg")
	if err := imgio.WriteFile(photoPath, img, 92); err != nil {
		t.Fatal(err)
	}

	mapPath = filepath.Join(dir, "house.json")
	if err := os.WriteFile(mapPath, []byte(mapJSON), 0644); err != nil {
		t.Fatal(err)
	}
	return photoPath, mapPath
}

func TestLoadMap(t *testing.T) {
	_, mapPath := writeTestInputs(t)
	m, err := LoadMap(mapPath)
	if err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if len(m.Placements) != 3 || len(m.Features) != 2 {
		t.Fatalf("parsed %d placements, %d features", len(m.Placements), len(m.Features))
	}
	if m.Placements[2].VerticalPosition == nil || *m.Placements[2].VerticalPosition != 90 {
		t.Error("explicit verticalPosition not parsed")
	}
	if m.Placements[0].Anchor != "left of front door" {
		t.Errorf("anchor = %q", m.Placements[0].Anchor)
	}
}

func TestRunProducesOutputsAndManifest(t *testing.T) {
	photoPath, mapPath := writeTestInputs(t)
	outDir := t.TempDir()

	cfg := Config{
		OutputDir:    outDir,
		Workers:      2,
		JPEGQuality:  92,
		WriteMasks:   true,
		WriteMarkers: true,
	}
	jobs := []Job{
		{Name: "house", PhotoPath: photoPath, MapPath: mapPath},
		{Name: "missing", PhotoPath: filepath.Join(outDir, "nope.jpg"), MapPath: mapPath},
	}

	results := Run(cfg, jobs)
	if len(results) != 2 {
		t.Fatalf("results = %d; want 2", len(results))
	}

	var ok, failed *Result
	for i := range results {
		if results[i].Name == "house" {
			ok = &results[i]
		} else {
			failed = &results[i]
		}
	}
	if ok == nil || !ok.Success {
		t.Fatalf("house job failed: %+v", results)
	}
	if failed == nil || failed.Success {
		t.Fatal("job with missing photo reported success")
	}

	if _, err := os.Stat(filepath.Join(outDir, "house_prelit.jpg")); err != nil {
		t.Errorf("composite missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "house_markers.jpg")); err != nil {
		t.Errorf("markers missing: %v", err)
	}

	// Three placements, two types, ups within the gap threshold: 2 masks.
	if len(ok.Manifest.Masks) != 2 {
		t.Fatalf("mask entries = %d; want 2", len(ok.Manifest.Masks))
	}
	for _, me := range ok.Manifest.Masks {
		if _, err := os.Stat(filepath.Join(outDir, me.File)); err != nil {
			t.Errorf("mask file %s missing: %v", me.File, err)
		}
	}
	if ok.Manifest.AspectRatio != "4:3" {
		t.Errorf("aspect ratio = %s; want 4:3", ok.Manifest.AspectRatio)
	}

	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := WriteManifest(manifestPath, results); err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatal(err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("manifest entries = %d; want 1 (failed job excluded)", len(entries))
	}
}
