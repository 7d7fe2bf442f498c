// Package dataset loads the static campus location set the navigation core
// is fed with. The core itself never touches files.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"campus-nav/pkg/navigation"
)

var (
	ErrEmptyDataset = errors.New("dataset contains no locations")
)

type file struct {
	Locations []navigation.Point `json:"locations"`
}

// Load reads {name, lat, lon} records from a JSON file and validates them:
// the set must be non-empty, names unique and non-blank, coordinates inside
// the valid degree ranges.
func Load(path string) ([]navigation.Point, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if err := Validate(f.Locations); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return f.Locations, nil
}

// Validate checks a location set without loading it from disk.
func Validate(points []navigation.Point) error {
	if len(points) == 0 {
		return ErrEmptyDataset
	}
	seen := make(map[string]bool, len(points))
	for _, p := range points {
		if p.Name == "" {
			return errors.New("location with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate location name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Lat < -90 || p.Lat > 90 {
			return fmt.Errorf("location %q: latitude %f out of range", p.Name, p.Lat)
		}
		if p.Lon < -180 || p.Lon > 180 {
			return fmt.Errorf("location %q: longitude %f out of range", p.Name, p.Lon)
		}
	}
	return nil
}
