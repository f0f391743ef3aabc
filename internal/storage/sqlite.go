// Package storage provides SQLite-based persistence for save slots.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Slot state is stored zstd-compressed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrSlotEmpty is returned when loading a slot that was never saved.
var ErrSlotEmpty = errors.New("storage: slot is empty")

// DefaultFile is the database file name inside the save directory.
const DefaultFile = "f2b-saves.db"

// Store manages the SQLite database connection for save slots.
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// SlotInfo describes a stored save slot.
type SlotInfo struct {
	Slot          int
	Level         int
	Size          int // Uncompressed state size in bytes
	HasScreenshot bool
	SavedAt       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot create encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, fmt.Errorf("storage: cannot create decoder: %w", err)
	}

	store := &Store{db: db, enc: enc, dec: dec}

	if err := store.migrate(); err != nil {
		store.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			slot INTEGER PRIMARY KEY,
			level INTEGER NOT NULL DEFAULT 0,
			size INTEGER NOT NULL DEFAULT 0,
			state BLOB NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS screenshots (
			slot INTEGER PRIMARY KEY,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			image BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.enc != nil {
		s.enc.Close()
	}
	if s.dec != nil {
		s.dec.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSlot writes state to slot, replacing any previous save.
func (s *Store) SaveSlot(slot, level int, state []byte) error {
	blob := s.enc.EncodeAll(state, nil)
	_, err := s.db.Exec(
		`INSERT INTO slots (slot, level, size, state, saved_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   level = excluded.level,
		   size = excluded.size,
		   state = excluded.state,
		   saved_at = excluded.saved_at`,
		slot, level, len(state), blob,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %d: %w", slot, err)
	}
	return nil
}

// LoadSlot returns the state stored in slot.
// Returns ErrSlotEmpty if the slot was never saved.
func (s *Store) LoadSlot(slot int) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRow("SELECT state FROM slots WHERE slot = ?", slot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: slot %d: %w", slot, ErrSlotEmpty)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %d: %w", slot, err)
	}

	state, err := s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: slot %d is corrupt: %w", slot, err)
	}
	return state, nil
}

// DeleteSlot removes a slot and its screenshot.
func (s *Store) DeleteSlot(slot int) error {
	if _, err := s.db.Exec("DELETE FROM slots WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %d: %w", slot, err)
	}
	if _, err := s.db.Exec("DELETE FROM screenshots WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete screenshot %d: %w", slot, err)
	}
	return nil
}

// SaveScreenshot stores a thumbnail for slot. image is stored as given.
func (s *Store) SaveScreenshot(slot, width, height int, image []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO screenshots (slot, width, height, image, created_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   width = excluded.width,
		   height = excluded.height,
		   image = excluded.image,
		   created_at = excluded.created_at`,
		slot, width, height, s.enc.EncodeAll(image, nil),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save screenshot %d: %w", slot, err)
	}
	return nil
}

// Screenshot returns the thumbnail stored for slot and its dimensions.
func (s *Store) Screenshot(slot int) (image []byte, width, height int, err error) {
	var blob []byte
	err = s.db.QueryRow(
		"SELECT width, height, image FROM screenshots WHERE slot = ?", slot,
	).Scan(&width, &height, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, 0, fmt.Errorf("storage: screenshot %d: %w", slot, ErrSlotEmpty)
	}
	if err != nil {
		return nil, 0, 0, fmt.Errorf("storage: cannot load screenshot %d: %w", slot, err)
	}
	image, err = s.dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("storage: screenshot %d is corrupt: %w", slot, err)
	}
	return image, width, height, nil
}

// ListSlots returns every stored slot ordered by slot number.
func (s *Store) ListSlots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT s.slot, s.level, s.size, s.saved_at, sc.slot IS NOT NULL
		 FROM slots s
		 LEFT JOIN screenshots sc ON sc.slot = s.slot
		 ORDER BY s.slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var savedAt any
		if err := rows.Scan(&info.Slot, &info.Level, &info.Size, &savedAt, &info.HasScreenshot); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.SavedAt = parseTime(savedAt)
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
