package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/quakewatch/quake-explorer/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS snapshots (
	id          TEXT PRIMARY KEY,
	quake_count INTEGER NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS quakes (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(id),
	seq         INTEGER NOT NULL,
	occurred_at DATETIME NOT NULL,
	latitude    REAL NOT NULL,
	longitude   REAL NOT NULL,
	magnitude   REAL NOT NULL,
	depth_km    REAL NOT NULL DEFAULT 0,
	place       TEXT NOT NULL DEFAULT '',
	district    TEXT NOT NULL,
	PRIMARY KEY (snapshot_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_quakes_snapshot_id ON quakes(snapshot_id);
CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, quakes []model.Quake) (*Snapshot, error) {
	snap := &Snapshot{
		ID:         uuid.New().String(),
		QuakeCount: len(quakes),
		CreatedAt:  time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: begin snapshot tx")
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, quake_count, created_at) VALUES (?, ?, ?)`,
		snap.ID, snap.QuakeCount, snap.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert snapshot")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO quakes (snapshot_id, seq, occurred_at, latitude, longitude, magnitude, depth_km, place, district)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: prepare quake insert")
	}
	defer stmt.Close() //nolint:errcheck

	// seq preserves the dataset's original ordering across save/load.
	for i, q := range quakes {
		_, err = stmt.ExecContext(ctx,
			snap.ID, i, q.Time.UTC(), q.Latitude, q.Longitude, q.Magnitude, q.DepthKM, q.Place, q.District,
		)
		if err != nil {
			return nil, eris.Wrapf(err, "sqlite: insert quake %d", i)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, eris.Wrap(err, "sqlite: commit snapshot")
	}
	return snap, nil
}

func (s *SQLiteStore) LoadLatest(ctx context.Context) ([]model.Quake, *Snapshot, error) {
	var snap Snapshot
	err := s.db.QueryRowContext(ctx,
		`SELECT id, quake_count, created_at FROM snapshots ORDER BY created_at DESC, id LIMIT 1`,
	).Scan(&snap.ID, &snap.QuakeCount, &snap.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, eris.New("sqlite: no snapshot saved yet")
	}
	if err != nil {
		return nil, nil, eris.Wrap(err, "sqlite: query latest snapshot")
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT occurred_at, latitude, longitude, magnitude, depth_km, place, district
		FROM quakes WHERE snapshot_id = ? ORDER BY seq`, snap.ID)
	if err != nil {
		return nil, nil, eris.Wrap(err, "sqlite: query snapshot quakes")
	}
	defer rows.Close() //nolint:errcheck

	quakes := make([]model.Quake, 0, snap.QuakeCount)
	for rows.Next() {
		var q model.Quake
		if err := rows.Scan(&q.Time, &q.Latitude, &q.Longitude, &q.Magnitude, &q.DepthKM, &q.Place, &q.District); err != nil {
			return nil, nil, eris.Wrap(err, "sqlite: scan quake row")
		}
		quakes = append(quakes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, eris.Wrap(err, "sqlite: iterate quake rows")
	}

	return quakes, &snap, nil
}

func (s *SQLiteStore) ListSnapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, quake_count, created_at FROM snapshots ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query snapshots")
	}
	defer rows.Close() //nolint:errcheck

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.QuakeCount, &snap.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan snapshot row")
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate snapshot rows")
	}
	return snaps, nil
}
