// Package model defines the core data types shared across the explorer:
// earthquake records, district centroids, and the derived views the
// dashboard renders.
package model

import "time"

// Quake is a single earthquake record. All fields are fixed at load time
// except District, which is set exactly once by the startup assignment pass.
type Quake struct {
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Magnitude float64   `json:"magnitude"`
	DepthKM   float64   `json:"depth_km"`
	Place     string    `json:"place,omitempty"`
	District  string    `json:"district,omitempty"`
}

// Centroid is a representative point for one district. Static reference
// data, loaded once and never mutated.
type Centroid struct {
	District  string  `json:"district"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Dataset is the master earthquake dataset. After district assignment it
// is read-only and may be shared across sessions without locking.
type Dataset struct {
	Quakes []Quake
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Quakes)
}

// DistrictCount is one row of the aggregated count table.
type DistrictCount struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}
