// Package journal persists finished drag gestures to SQLite. It is an
// optional companion to the dragdrop core: hosts feed it from their
// OnDrop and OnCancel callbacks and can fetch recent entries for
// diagnostics. The core never imports it.
package journal

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/justyntemme/dragdrop/internal/debug"
)

// Outcome is how a gesture finished.
type Outcome string

const (
	OutcomeDrop   Outcome = "drop"
	OutcomeCancel Outcome = "cancel"
)

// Entry is one recorded gesture.
type Entry struct {
	ID          int64
	At          time.Time
	Outcome     Outcome
	EffectToken string
	Types       []string // payload types carried, in order
	PayloadLen  int      // total payload bytes
}

type EventType int

const (
	RecordGesture EventType = iota
	FetchRecent
)

type Request struct {
	Op    EventType
	Entry Entry
	Limit int
}

type Response struct {
	Op      EventType
	Entries []Entry
	Err     error
}

// DB owns the journal database behind a request/response channel pair so
// UI code never blocks on disk. Run Start on its own goroutine.
type DB struct {
	conn         *sql.DB
	RequestChan  chan Request
	ResponseChan chan Response

	started atomic.Bool
	done    chan struct{} // closed when the worker loop exits
}

func NewDB() *DB {
	return &DB{
		RequestChan:  make(chan Request, 10),
		ResponseChan: make(chan Response, 10),
		done:         make(chan struct{}),
	}
}

// Open initializes the database connection and schema
func (d *DB) Open(dbPath string) error {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	// Performance Tuning
	// WAL mode allows simultaneous readers and writers
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}
	// Synchronous NORMAL is safe against app crashes, faster than FULL
	if _, err := db.Exec("PRAGMA synchronous=NORMAL;"); err != nil {
		return err
	}

	query := `
	CREATE TABLE IF NOT EXISTS gestures (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at DATETIME DEFAULT CURRENT_TIMESTAMP,
		outcome TEXT NOT NULL,
		effect_token TEXT NOT NULL,
		types TEXT NOT NULL,
		payload_len INTEGER NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return err
	}

	d.conn = db
	return nil
}

// Start runs the worker loop until RequestChan is closed. Run it on its
// own goroutine.
func (d *DB) Start() {
	d.started.Store(true)
	defer close(d.done)
	for req := range d.RequestChan {
		switch req.Op {
		case RecordGesture:
			d.handleRecord(req.Entry)
		case FetchRecent:
			d.handleFetchRecent(req.Limit)
		}
	}
}

func (d *DB) handleRecord(e Entry) {
	debug.Log(debug.JOURNAL, "record: outcome=%s effects=%q types=%v", e.Outcome, e.EffectToken, e.Types)
	_, err := d.conn.Exec(
		"INSERT INTO gestures (outcome, effect_token, types, payload_len) VALUES (?, ?, ?, ?)",
		string(e.Outcome), e.EffectToken, strings.Join(e.Types, ","), e.PayloadLen)
	if err != nil {
		log.Printf("Journal Error: %v", err)
	}
}

func (d *DB) handleFetchRecent(limit int) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.conn.Query(
		"SELECT id, at, outcome, effect_token, types, payload_len FROM gestures ORDER BY id DESC LIMIT ?",
		limit)
	if err != nil {
		d.ResponseChan <- Response{Op: FetchRecent, Err: err}
		return
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var outcome, types string
		if err := rows.Scan(&e.ID, &e.At, &outcome, &e.EffectToken, &types, &e.PayloadLen); err == nil {
			e.Outcome = Outcome(outcome)
			if types != "" {
				e.Types = strings.Split(types, ",")
			}
			entries = append(entries, e)
		}
	}

	d.ResponseChan <- Response{Op: FetchRecent, Entries: entries}
}

// Close waits for a started worker to drain the request queue, then
// closes the database. Close RequestChan first or Close never returns.
func (d *DB) Close() {
	if d.started.Load() {
		<-d.done
	}
	if d.conn != nil {
		d.conn.Close()
	}
}
