package remap

import (
	"sort"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// MemoryStore is an in-memory Store backed by a lock-protected pair of hash
// maps, grounded on the same sync.RWMutex-plus-multiple-index-map shape the
// root package's DataSetCollection uses for its own lookups.
type MemoryStore struct {
	mu sync.RWMutex

	byOriginal map[string]*Mapping
	bySynth    map[string]*Mapping
	preserved  map[string]struct{}

	opts Options
	log  logr.Logger
}

// NewMemoryStore creates an empty in-memory remap store.
func NewMemoryStore(opts Options, log logr.Logger) *MemoryStore {
	return &MemoryStore{
		byOriginal: make(map[string]*Mapping),
		bySynth:    make(map[string]*Mapping),
		preserved:  make(map[string]struct{}),
		opts:       opts,
		log:        log,
	}
}

func (s *MemoryStore) AddPreserved(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.preserved[id] = struct{}{}
	}
}

func (s *MemoryStore) isPreserved(original string) bool {
	if IsStandardUID(original) {
		return true
	}
	_, ok := s.preserved[original]
	return ok
}

// GetOrCreate returns original unchanged if it is a preserved or standard
// identifier; otherwise it returns the previously allocated synthetic for
// original, or allocates and records a new one.
func (s *MemoryStore) GetOrCreate(original, scope string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isPreserved(original) {
		return original, nil
	}
	if m, ok := s.byOriginal[original]; ok {
		return m.RemappedUID, nil
	}

	synthetic := generateSynthetic(original, s.opts)
	m := &Mapping{OriginalUID: original, RemappedUID: synthetic, Scope: scope, CreatedAt: time.Now().UTC()}
	s.byOriginal[original] = m
	s.bySynth[synthetic] = m
	s.log.V(1).Info("allocated synthetic identifier", "scope", scope)
	return synthetic, nil
}

func (s *MemoryStore) TryGetSynthetic(original string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.byOriginal[original]
	if !ok {
		return "", false
	}
	return m.RemappedUID, true
}

func (s *MemoryStore) TryGetOriginal(synthetic string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.bySynth[synthetic]
	if !ok {
		return "", false
	}
	return m.OriginalUID, true
}

func (s *MemoryStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byOriginal), nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byOriginal = make(map[string]*Mapping)
	s.bySynth = make(map[string]*Mapping)
	return nil
}

func (s *MemoryStore) BulkInsert(mappings []Mapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range mappings {
		m := mappings[i]
		if err := validateMapping(m); err != nil {
			return err
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = time.Now().UTC()
		}
		stored := m
		s.byOriginal[m.OriginalUID] = &stored
		s.bySynth[m.RemappedUID] = &stored
	}
	return nil
}

func (s *MemoryStore) Export(w writer) error {
	s.mu.RLock()
	all := make([]*Mapping, 0, len(s.byOriginal))
	for _, m := range s.byOriginal {
		all = append(all, m)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })

	rows := make([]exportedMapping, len(all))
	for i, m := range all {
		rows[i] = exportedMapping{
			OriginalUID: m.OriginalUID,
			RemappedUID: m.RemappedUID,
			Scope:       m.Scope,
			CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		}
	}
	return encodeExport(w, rows)
}
