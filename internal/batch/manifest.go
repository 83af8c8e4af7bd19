package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Primitive string  `json:"primitive"`
	Frame     int     `json:"frame"`
	YawDeg    float32 `json:"yaw_deg"`
	PitchDeg  float32 `json:"pitch_deg"`
	Image     string  `json:"image"`
}

// WriteManifest writes the successful results as a JSON array to path.
func WriteManifest(path string, pitchDeg float32, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Primitive: r.Kind.String(),
			Frame:     r.Frame,
			YawDeg:    r.YawDeg,
			PitchDeg:  pitchDeg,
			Image:     filepath.ToSlash(r.Path),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
