// Package store persists assigned dataset snapshots so the server can start
// without re-parsing the input files. The interactive filter path never
// touches the store; the in-memory dataset stays the source of truth.
package store

import (
	"context"
	"time"

	"github.com/quakewatch/quake-explorer/internal/model"
)

// Snapshot describes one saved dataset.
type Snapshot struct {
	ID         string    `json:"id"`
	QuakeCount int       `json:"quake_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store defines the snapshot persistence interface.
type Store interface {
	// SaveSnapshot writes the assigned dataset and returns its snapshot ID.
	SaveSnapshot(ctx context.Context, quakes []model.Quake) (*Snapshot, error)
	// LoadLatest returns the most recent snapshot's records in saved order.
	LoadLatest(ctx context.Context) ([]model.Quake, *Snapshot, error)
	// ListSnapshots returns snapshot metadata, newest first.
	ListSnapshots(ctx context.Context) ([]Snapshot, error)

	Migrate(ctx context.Context) error
	Close() error
}
