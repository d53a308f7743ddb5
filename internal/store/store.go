// Package store persists named frames to a local SQLite database.
// The store follows an attach/detach lifecycle: Attach opens the
// database and applies the schema, Detach closes it, and every
// operation in between is guarded by the attached check.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/ijlyttle/vctrs/pkg/frame"
	"github.com/ijlyttle/vctrs/pkg/vctrs"
)

// Store errors.
var (
	ErrNotAttached     = errors.New("store is not attached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrFrameNotFound   = errors.New("frame not found")
	ErrInvalidName     = errors.New("frame name must not be empty")
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "frames.db"

// Schema DDL. A frame row owns its column rows; payloads are JSON
// arrays with null standing in for the missing marker, since JSON has
// no NaN.
const (
	createFrames = `CREATE TABLE IF NOT EXISTS frames (
    frame_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);`

	createFrameColumns = `CREATE TABLE IF NOT EXISTS frame_columns (
    column_id TEXT PRIMARY KEY,
    frame_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    kind_tag TEXT NOT NULL,
    payload TEXT NOT NULL,
    FOREIGN KEY (frame_id) REFERENCES frames(frame_id)
);`
)

// Config holds the store's parameters.
type Config struct {
	DataDir string
}

// FrameInfo summarizes a stored frame for listings.
type FrameInfo struct {
	FrameID   string    `json:"frame_id"`
	Name      string    `json:"name"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is a SQLite-backed frame store.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   Config
	db       *sql.DB
	log      *zap.Logger
}

// New creates an unattached store. A nil logger disables logging.
func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{log: logger}
}

// Attach creates the data directory if needed, opens the database,
// and applies the schema. Returns ErrAlreadyAttached if called twice.
func (s *Store) Attach(config Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	for _, ddl := range []string{createFrames, createFrameColumns} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	s.log.Debug("store attached", zap.String("db", dbPath))
	return nil
}

// Detach closes the database. Idempotent; after Detach every
// operation returns ErrNotAttached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	s.log.Debug("store detached")
	return nil
}

// SaveFrame persists a frame under the given name, replacing any
// existing frame with that name. Returns the frame's UUID v7 id.
func (s *Store) SaveFrame(name string, f *frame.Frame) (string, error) {
	if name == "" {
		return "", ErrInvalidName
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", ErrNotAttached
	}

	newID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	frameID := newID.String()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace-by-name: drop the previous frame and its columns.
	if err := deleteFrameByNameTx(tx, name); err != nil && !errors.Is(err, ErrFrameNotFound) {
		return "", err
	}

	_, err = tx.Exec(
		"INSERT INTO frames (frame_id, name, created_at) VALUES (?, ?, ?)",
		frameID, name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("persisting frame: %w", err)
	}

	for i := 0; i < f.NumCols(); i++ {
		colName, c, err := f.ColumnAt(i)
		if err != nil {
			return "", err
		}
		v, ok := c.(*vctrs.Vector)
		if !ok {
			return "", fmt.Errorf("column %q is not a vector (%T)", colName, c)
		}
		payload, err := encodePayload(v.Values())
		if err != nil {
			return "", fmt.Errorf("encoding column %q: %w", colName, err)
		}
		colID, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		_, err = tx.Exec(
			"INSERT INTO frame_columns (column_id, frame_id, position, name, kind_tag, payload) VALUES (?, ?, ?, ?, ?, ?)",
			colID.String(), frameID, i, colName, v.Tag(), payload,
		)
		if err != nil {
			return "", fmt.Errorf("persisting column %q: %w", colName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing frame: %w", err)
	}
	s.log.Debug("frame saved", zap.String("name", name), zap.String("frame_id", frameID))
	return frameID, nil
}

// LoadFrame retrieves the frame stored under the given name. Columns
// are rebuilt through the checked constructor, so persisted bytes that
// no longer satisfy their kind's invariants are rejected rather than
// resurrected.
func (s *Store) LoadFrame(name string) (*frame.Frame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrNotAttached
	}

	var frameID string
	err := s.db.QueryRow("SELECT frame_id FROM frames WHERE name = ?", name).Scan(&frameID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrFrameNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up frame %q: %w", name, err)
	}

	rows, err := s.db.Query(
		"SELECT name, kind_tag, payload FROM frame_columns WHERE frame_id = ? ORDER BY position",
		frameID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading columns for %q: %w", name, err)
	}
	defer rows.Close()

	f := frame.New()
	for rows.Next() {
		var colName, kindTag, payload string
		if err := rows.Scan(&colName, &kindTag, &payload); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		kind, err := vctrs.KindByTag(kindTag)
		if err != nil {
			return nil, fmt.Errorf("frame %q column %q: %w", name, colName, err)
		}
		values, err := decodePayload(payload)
		if err != nil {
			return nil, fmt.Errorf("decoding column %q: %w", colName, err)
		}
		v, err := vctrs.New(kind, values)
		if err != nil {
			return nil, fmt.Errorf("revalidating column %q: %w", colName, err)
		}
		if err := f.AddColumn(colName, v); err != nil {
			return nil, fmt.Errorf("frame %q: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading columns for %q: %w", name, err)
	}
	return f, nil
}

// ListFrames returns metadata for every stored frame, newest first.
func (s *Store) ListFrames() ([]FrameInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrNotAttached
	}

	rows, err := s.db.Query(`SELECT f.frame_id, f.name, f.created_at,
    COUNT(c.column_id),
    COALESCE(MAX(json_array_length(c.payload)), 0)
  FROM frames f LEFT JOIN frame_columns c ON c.frame_id = f.frame_id
  GROUP BY f.frame_id ORDER BY f.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing frames: %w", err)
	}
	defer rows.Close()

	infos := []FrameInfo{}
	for rows.Next() {
		var info FrameInfo
		var createdAt string
		if err := rows.Scan(&info.FrameID, &info.Name, &createdAt, &info.Cols, &info.Rows); err != nil {
			return nil, fmt.Errorf("scanning frame row: %w", err)
		}
		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at for %q: %w", info.Name, err)
		}
		info.CreatedAt = t
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteFrame removes the named frame and its columns.
// Returns ErrFrameNotFound if no frame has that name.
func (s *Store) DeleteFrame(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrNotAttached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteFrameByNameTx(tx, name); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	s.log.Debug("frame deleted", zap.String("name", name))
	return nil
}

// deleteFrameByNameTx removes a frame and its columns inside tx.
func deleteFrameByNameTx(tx *sql.Tx, name string) error {
	var frameID string
	err := tx.QueryRow("SELECT frame_id FROM frames WHERE name = ?", name).Scan(&frameID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %q", ErrFrameNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("looking up frame %q: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM frame_columns WHERE frame_id = ?", frameID); err != nil {
		return fmt.Errorf("deleting columns for %q: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM frames WHERE frame_id = ?", frameID); err != nil {
		return fmt.Errorf("deleting frame %q: %w", name, err)
	}
	return nil
}

// encodePayload renders values as a JSON array, with null for the
// missing marker.
func encodePayload(values []float64) (string, error) {
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		v := values[i]
		out[i] = &v
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodePayload is the inverse of encodePayload.
func decodePayload(payload string) ([]float64, error) {
	var in []*float64
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		return nil, err
	}
	out := make([]float64, len(in))
	for i, p := range in {
		if p == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *p
	}
	return out, nil
}
