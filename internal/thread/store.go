package thread

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/baalimago/mai/internal/utils"
	pub_models "github.com/baalimago/mai/pkg/models"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const storeFileName = "threads.db"

// ErrRunNotFound is returned when no run exists for a thread ID
var ErrRunNotFound = errors.New("run not found")

// Store persists runs in a sqlite database inside the config directory.
// One row per thread: scalar columns for cheap listing, plus the full
// Run as a json blob.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// RunMeta is the listing view of a stored run
type RunMeta struct {
	ID       string
	Phase    pub_models.Phase
	Decision pub_models.Decision
	Subject  string
	Updated  time.Time
}

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	phase      TEXT NOT NULL,
	decision   TEXT NOT NULL,
	subject    TEXT NOT NULL,
	state      TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_updated_at ON runs(updated_at);`

// Path returns the fully qualified thread store path
func Path(configDirPath string) string {
	return filepath.Join(configDirPath, storeFileName)
}

// Open opens or creates the run store at <configDirPath>/threads.db
func Open(configDirPath string) (*Store, error) {
	if err := utils.CreateConfigDir(configDirPath); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}
	db, err := sql.Open("sqlite", Path(configDirPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open thread store: %w", err)
	}

	// sqlite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create thread store schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save upserts the run keyed by its thread ID and stamps Updated
func (s *Store) Save(run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run.ID == "" {
		return errors.New("refusing to save run without ID")
	}
	run.Updated = time.Now()
	state, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run state: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO runs (id, phase, decision, subject, state, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		phase      = excluded.phase,
		decision   = excluded.decision,
		subject    = excluded.subject,
		state      = excluded.state,
		updated_at = excluded.updated_at`,
		run.ID, string(run.Phase), string(run.Decision), run.Email.Subject,
		string(state), run.Created.UnixNano(), run.Updated.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save run '%v': %w", run.ID, err)
	}
	return nil
}

// Load returns the run stored for the given thread ID
func (s *Store) Load(id string) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.db.QueryRow("SELECT state FROM runs WHERE id = ?", id)
	return scanRunState(row, id)
}

// Latest returns the most recently updated run, handy for resuming
// without remembering the thread ID
func (s *Store) Latest() (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.db.QueryRow("SELECT state FROM runs ORDER BY updated_at DESC LIMIT 1")
	return scanRunState(row, "latest")
}

// List returns metadata for every stored run, newest first
func (s *Store) List() ([]RunMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query("SELECT id, phase, decision, subject, updated_at FROM runs ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var metas []RunMeta
	for rows.Next() {
		var m RunMeta
		var phase, decision string
		var updatedAt int64
		if err := rows.Scan(&m.ID, &phase, &decision, &m.Subject, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		m.Phase = pub_models.Phase(phase)
		m.Decision = pub_models.Decision(decision)
		m.Updated = time.Unix(0, updatedAt)
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run rows: %w", err)
	}
	return metas, nil
}

// Delete removes the run for the given thread ID
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete run '%v': %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion of run '%v': %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: '%v'", ErrRunNotFound, id)
	}
	return nil
}

// Close the underlying database
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func scanRunState(row *sql.Row, id string) (Run, error) {
	var state string
	err := row.Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: '%v'", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to load run '%v': %w", id, err)
	}
	var run Run
	if err := json.Unmarshal([]byte(state), &run); err != nil {
		return Run{}, fmt.Errorf("failed to decode run state '%v': %w", id, err)
	}
	return run, nil
}
