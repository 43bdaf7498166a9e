package store

import (
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store owns the persisted document. Every load-mutate-save cycle runs
// inside one process-wide mutex, so operations are serialized relative to
// each other.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open returns a store backed by the given file. The file is created with
// the default table inventory on first load.
func Open(path string) *Store {
	return &Store{path: path}
}

// Load returns the current document, seeding the default inventory when the
// data file does not exist yet. Callers receive a fresh copy; the store
// keeps no in-memory state.
func (s *Store) Load() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Save persists the full document, replacing prior content.
func (s *Store) Save(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(doc)
}

// Update runs fn against the current document inside the critical section
// and persists the result when fn reports a change. Any error from fn
// aborts the cycle without saving.
func (s *Store) Update(fn func(doc *models.Document) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadLocked()
	if err != nil {
		return err
	}
	dirty, err := fn(doc)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	return s.saveLocked(doc)
}

func (s *Store) loadLocked() (*models.Document, error) {
	if err := s.ensureLocked(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &models.StoreError{Op: "read", Err: err}
	}
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &models.StoreError{Op: "decode", Err: err}
	}
	if doc.Tables == nil {
		doc.Tables = []models.Table{}
	}
	if doc.Reservations == nil {
		doc.Reservations = []models.Reservation{}
	}
	return &doc, nil
}

func (s *Store) saveLocked(doc *models.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &models.StoreError{Op: "encode", Err: err}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return &models.StoreError{Op: "write", Err: err}
	}
	return nil
}

// ensureLocked seeds the data file exactly once; it is a no-op when the
// file already exists.
func (s *Store) ensureLocked() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return &models.StoreError{Op: "stat", Err: err}
	}

	doc := &models.Document{
		Tables:       defaultTables(),
		Reservations: []models.Reservation{},
	}
	if err := s.saveLocked(doc); err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded default table inventory at %s", s.path)
	return nil
}
