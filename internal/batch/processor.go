// Package batch runs the compositing pipeline over many photos with a
// worker pool and writes the outputs plus a manifest for the downstream
// generation services.
package batch

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"lightscape-compositor/internal/imgio"
	"lightscape-compositor/internal/marker"
	"lightscape-compositor/internal/mask"
	"lightscape-compositor/internal/overlay"
	"lightscape-compositor/internal/render"
	"lightscape-compositor/internal/spatial"
	"lightscape-compositor/internal/zone"
)

// Job is one photo plus its spatial map.
type Job struct {
	Name      string // output file stem
	PhotoPath string
	MapPath   string
}

// Config holds shared resources and settings for a batch run.
type Config struct {
	OutputDir    string
	Workers      int
	JPEGQuality  int
	SpritePath   string
	SpriteScale  float64
	MaskOpts     mask.Options
	Render       render.Options
	WriteMasks   bool
	WriteMarkers bool
}

// Result holds the outcome of processing one job.
type Result struct {
	Name     string
	Success  bool
	Error    string
	Manifest Entry
}

// Run processes all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	var sprite image.Image
	if cfg.SpritePath != "" {
		s, err := imgio.DecodeFile(cfg.SpritePath)
		if err != nil {
			log.Printf("sprite disabled: %v", err)
		} else {
			sprite = s
		}
	}

	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f photos/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, sprite, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, sprite image.Image, job Job) Result {
	photo, err := imgio.DecodeFile(job.PhotoPath)
	if err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}

	m, err := LoadMap(job.MapPath)
	if err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}
	if clamped := spatial.Normalize(&m); clamped > 0 {
		log.Printf("%s: clamped %d out-of-range coordinates", job.Name, clamped)
	}

	b := photo.Bounds()
	entry := Entry{
		Name:        job.Name,
		Width:       b.Dx(),
		Height:      b.Dy(),
		AspectRatio: string(zone.ClosestAspectRatio(b.Dx(), b.Dy())),
		Placements:  len(m.Placements),
	}

	// Night base first, sprite overlay on the dark base, then glows and
	// suppression.
	base := render.NightBase(photo)
	if sprite != nil {
		base = overlay.Apply(base, sprite, m, cfg.SpriteScale)
	}
	opts := cfg.Render
	opts.SkipNight = true
	composite, err := render.PreLight(base, m, opts)
	if err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}

	compositePath := filepath.Join(cfg.OutputDir, job.Name+"_prelit.jpg")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}
	if err := imgio.WriteFile(compositePath, composite, cfg.JPEGQuality); err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}
	entry.Composite = filepath.Base(compositePath)

	if cfg.WriteMasks {
		groups, err := mask.Generate(m, b.Dx(), b.Dy(), cfg.MaskOpts)
		if err != nil {
			// Partial failure: keep the groups that rasterized.
			log.Printf("%s: %v", job.Name, err)
		}
		for i, g := range groups {
			maskPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_mask_%02d.webp", job.Name, i))
			f, err := os.Create(maskPath)
			if err != nil {
				return Result{Name: job.Name, Error: err.Error()}
			}
			err = imgio.EncodeMaskWebP(f, g.Mask)
			f.Close()
			if err != nil {
				return Result{Name: job.Name, Error: err.Error()}
			}

			ids := make([]string, len(g.Placements))
			for j, p := range g.Placements {
				ids[j] = p.ID
			}
			entry.Masks = append(entry.Masks, MaskEntry{
				File:        filepath.Base(maskPath),
				FixtureType: string(g.FixtureType),
				SubOption:   g.SubOption,
				Placements:  ids,
			})
		}
	}

	if cfg.WriteMarkers {
		guided := marker.Overlay(photo, m)
		markerPath := filepath.Join(cfg.OutputDir, job.Name+"_markers.jpg")
		if err := imgio.WriteFile(markerPath, guided, cfg.JPEGQuality); err != nil {
			return Result{Name: job.Name, Error: err.Error()}
		}
		entry.Markers = filepath.Base(markerPath)
	}

	return Result{Name: job.Name, Success: true, Manifest: entry}
}

// LoadMap parses a spatial map JSON file as produced by the upstream
// analyzer.
func LoadMap(path string) (spatial.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spatial.Map{}, fmt.Errorf("batch: read map %s: %w", path, err)
	}
	var m spatial.Map
	if err := json.Unmarshal(data, &m); err != nil {
		return spatial.Map{}, fmt.Errorf("batch: parse map %s: %w", path, err)
	}
	return m, nil
}
