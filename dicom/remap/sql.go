package remap

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medvault/dicomkit/dicom"
)

// schema matches the table layout in the persistent remap store contract:
// original_uid as primary key, remapped_uid unique, plus the scope/created_at
// indexes needed for ordered export.
const schema = `
CREATE TABLE IF NOT EXISTS remap (
	original_uid TEXT PRIMARY KEY,
	remapped_uid TEXT NOT NULL UNIQUE,
	scope TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_remap_remapped_uid ON remap(remapped_uid);
CREATE INDEX IF NOT EXISTS idx_remap_scope_created_at ON remap(scope, created_at);
`

// SQLStore is a Store backed by an embedded SQLite database in
// write-ahead-logging mode, following §4.11's requirement that a single
// connection factory issue short-lived connections per operation, each
// serialised by a process-wide lock.
type SQLStore struct {
	mu sync.Mutex

	db        *sql.DB
	opts      Options
	preserved map[string]struct{}
	log       logr.Logger
}

// OpenSQLStore opens (creating if necessary) a SQLite-backed remap store at
// path, enabling WAL journal mode.
func OpenSQLStore(path string, opts Options, log logr.Logger) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("%w: opening remap store: %v", dicom.ErrStoreIO, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating remap schema: %v", dicom.ErrStoreIO, err)
	}
	return &SQLStore{db: db, opts: opts, preserved: make(map[string]struct{}), log: log}, nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) AddPreserved(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.preserved[id] = struct{}{}
	}
}

func (s *SQLStore) isPreserved(original string) bool {
	if IsStandardUID(original) {
		return true
	}
	_, ok := s.preserved[original]
	return ok
}

func (s *SQLStore) GetOrCreate(original, scope string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isPreserved(original) {
		return original, nil
	}

	var remapped string
	err := s.db.QueryRow(`SELECT remapped_uid FROM remap WHERE original_uid = ?`, original).Scan(&remapped)
	if err == nil {
		return remapped, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("%w: looking up %q: %v", dicom.ErrStoreIO, original, err)
	}

	synthetic := generateSynthetic(original, s.opts)
	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		`INSERT INTO remap (original_uid, remapped_uid, scope, created_at) VALUES (?, ?, ?, ?)`,
		original, synthetic, scope, createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("%w: inserting mapping for %q: %v", dicom.ErrStoreIO, original, err)
	}
	s.log.V(1).Info("allocated synthetic identifier", "scope", scope)
	return synthetic, nil
}

func (s *SQLStore) TryGetSynthetic(original string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var remapped string
	if err := s.db.QueryRow(`SELECT remapped_uid FROM remap WHERE original_uid = ?`, original).Scan(&remapped); err != nil {
		return "", false
	}
	return remapped, true
}

func (s *SQLStore) TryGetOriginal(synthetic string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var original string
	if err := s.db.QueryRow(`SELECT original_uid FROM remap WHERE remapped_uid = ?`, synthetic).Scan(&original); err != nil {
		return "", false
	}
	return original, true
}

func (s *SQLStore) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM remap`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: counting mappings: %v", dicom.ErrStoreIO, err)
	}
	return n, nil
}

func (s *SQLStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM remap`); err != nil {
		return fmt.Errorf("%w: clearing remap store: %v", dicom.ErrStoreIO, err)
	}
	return nil
}

func (s *SQLStore) BulkInsert(mappings []Mapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning bulk insert: %v", dicom.ErrStoreIO, err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO remap (original_uid, remapped_uid, scope, created_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: preparing bulk insert: %v", dicom.ErrStoreIO, err)
	}
	defer stmt.Close()

	for _, m := range mappings {
		if err := validateMapping(m); err != nil {
			tx.Rollback()
			return err
		}
		createdAt := m.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		if _, err := stmt.Exec(m.OriginalUID, m.RemappedUID, m.Scope, createdAt.Format(time.RFC3339)); err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: inserting %q: %v", dicom.ErrStoreIO, m.OriginalUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing bulk insert: %v", dicom.ErrStoreIO, err)
	}
	return nil
}

func (s *SQLStore) Export(w writer) error {
	s.mu.Lock()
	rows, err := s.db.Query(`SELECT original_uid, remapped_uid, scope, created_at FROM remap ORDER BY created_at ASC`)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: querying mappings for export: %v", dicom.ErrStoreIO, err)
	}
	defer rows.Close()

	var all []exportedMapping
	for rows.Next() {
		var m exportedMapping
		if err := rows.Scan(&m.OriginalUID, &m.RemappedUID, &m.Scope, &m.CreatedAt); err != nil {
			return fmt.Errorf("%w: scanning mapping row: %v", dicom.ErrStoreIO, err)
		}
		all = append(all, m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: iterating mapping rows: %v", dicom.ErrStoreIO, err)
	}

	return encodeExport(w, all)
}
