// Package store provides SQLite-based persistence for captured input
// events. The log is append-only: hookwatch writes each decoded event
// under the session it was captured in, and the query side reads them
// back for inspection and summary counts.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"uiohook/pkg/hook"
)

// Event kind labels as stored in the events.kind column.
const (
	KindHookEnabled   = "hook_enabled"
	KindHookDisabled  = "hook_disabled"
	KindKeyPressed    = "key_pressed"
	KindKeyReleased   = "key_released"
	KindKeyTyped      = "key_typed"
	KindMouseMoved    = "mouse_moved"
	KindMousePressed  = "mouse_pressed"
	KindMouseReleased = "mouse_released"
	KindMouseClicked  = "mouse_clicked"
	KindMouseDragged  = "mouse_dragged"
	KindWheel         = "wheel"
)

// Record is one persisted event row. Fields that do not apply to the
// row's kind are zero.
type Record struct {
	ID         int64
	SessionID  int64
	CapturedAt time.Time
	Kind       string
	EventTime  uint64
	Mask       uint16

	KeyCode uint16
	RawCode uint16
	KeyChar rune

	Button uint16
	Clicks uint16
	X      int16
	Y      int16

	WheelType uint8
	Amount    uint16
	Rotation  int16
	Direction uint8
}

// Store is the SQLite event log.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies pending
// migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BeginSession opens a new capture session and returns its id.
func (s *Store) BeginSession(hostname string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions (hostname, started_ns) VALUES (?, ?)`,
		hostname, time.Now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("begin session: %w", err)
	}
	return res.LastInsertId()
}

// EndSession marks a capture session as stopped.
func (s *Store) EndSession(id int64) error {
	_, err := s.db.Exec(
		`UPDATE sessions SET stopped_ns = ? WHERE id = ?`,
		time.Now().UnixNano(), id,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// Append persists one decoded hook event under the given session and
// returns the row id.
func (s *Store) Append(sessionID int64, ev hook.Event) (int64, error) {
	rec := recordOf(ev)
	rec.SessionID = sessionID
	rec.CapturedAt = time.Now()

	res, err := s.db.Exec(`
		INSERT INTO events (
		    session_id, captured_ns, kind, event_ms, mask,
		    key_code, raw_code, key_char,
		    button, clicks, x, y,
		    wheel_type, amount, rotation, direction
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.CapturedAt.UnixNano(), rec.Kind, rec.EventTime, rec.Mask,
		rec.KeyCode, rec.RawCode, rec.KeyChar,
		rec.Button, rec.Clicks, rec.X, rec.Y,
		rec.WheelType, rec.Amount, rec.Rotation, rec.Direction,
	)
	if err != nil {
		return 0, fmt.Errorf("append event: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, session_id, captured_ns, kind, event_ms, mask,
		       key_code, raw_code, key_char,
		       button, clicks, x, y,
		       wheel_type, amount, rotation, direction
		FROM events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent events: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var capturedNs int64
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &capturedNs, &rec.Kind, &rec.EventTime, &rec.Mask,
			&rec.KeyCode, &rec.RawCode, &rec.KeyChar,
			&rec.Button, &rec.Clicks, &rec.X, &rec.Y,
			&rec.WheelType, &rec.Amount, &rec.Rotation, &rec.Direction,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		rec.CapturedAt = time.Unix(0, capturedNs)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// CountByKind returns the number of stored events per kind label.
func (s *Store) CountByKind() (map[string]int64, error) {
	rows, err := s.db.Query(`SELECT kind, COUNT(*) FROM events GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var kind string
		var n int64
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

// recordOf flattens a decoded event into a Record.
func recordOf(ev hook.Event) Record {
	rec := Record{EventTime: ev.Timestamp(), Mask: uint16(ev.Mask())}

	switch e := ev.(type) {
	case *hook.HookEnabledEvent:
		rec.Kind = KindHookEnabled
	case *hook.HookDisabledEvent:
		rec.Kind = KindHookDisabled

	case *hook.KeyboardEvent:
		switch e.Phase {
		case hook.KeyReleased:
			rec.Kind = KindKeyReleased
		case hook.KeyTyped:
			rec.Kind = KindKeyTyped
		default:
			rec.Kind = KindKeyPressed
		}
		rec.KeyCode = uint16(e.Key)
		rec.RawCode = e.RawCode
		rec.KeyChar = e.Char

	case *hook.MouseEvent:
		switch e.Phase {
		case hook.MousePressed:
			rec.Kind = KindMousePressed
		case hook.MouseReleased:
			rec.Kind = KindMouseReleased
		case hook.MouseClicked:
			rec.Kind = KindMouseClicked
		case hook.MouseDragged:
			rec.Kind = KindMouseDragged
		default:
			rec.Kind = KindMouseMoved
		}
		rec.Button = uint16(e.Button)
		rec.Clicks = e.Clicks
		rec.X = e.X
		rec.Y = e.Y

	case *hook.WheelEvent:
		rec.Kind = KindWheel
		rec.Clicks = e.Clicks
		rec.X = e.X
		rec.Y = e.Y
		rec.WheelType = uint8(e.Type)
		rec.Amount = e.Amount
		rec.Rotation = e.Rotation
		rec.Direction = uint8(e.Direction)
	}
	return rec
}
