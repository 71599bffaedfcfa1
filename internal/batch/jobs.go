package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type jobFile struct {
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo"`
	Map   string `json:"map"`
}

// LoadJobs reads a jobs.json file: an array of {name, photo, map} entries.
// Relative paths resolve against the file's own directory; a missing name
// defaults to the photo's base name.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read jobs %s: %w", path, err)
	}
	var raw []jobFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("batch: parse jobs %s: %w", path, err)
	}

	base := filepath.Dir(path)
	jobs := make([]Job, 0, len(raw))
	for i, j := range raw {
		if j.Photo == "" || j.Map == "" {
			return nil, fmt.Errorf("batch: jobs entry %d missing photo or map", i)
		}
		name := j.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(j.Photo), filepath.Ext(j.Photo))
		}
		jobs = append(jobs, Job{
			Name:      name,
			PhotoPath: resolvePath(base, j.Photo),
			MapPath:   resolvePath(base, j.Map),
		})
	}
	return jobs, nil
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
