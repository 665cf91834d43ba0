package repository

import (
	"encoding/json"
	"sync"
	"time"

	"pitchside/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fixed store keys. Each key holds the JSON snapshot of one whole collection;
// every mutation rewrites the full snapshot under its key.
const (
	KeyPlayers     = "u10_players"
	KeyEvents      = "u10_events"
	KeyRatings     = "u10_skill_ratings"
	KeyAttendance  = "u10_attendance"
	KeyAssessments = "u10_ai_assessments"
	KeySettings    = "u10_settings"
	KeyAPIKey      = "u10_claude_key"
	KeySeeded      = "u10_seeded"
)

// BackupKeys are the keys included in a backup document. The remote API key
// and the seed marker are deliberately excluded.
var BackupKeys = []string{
	KeyPlayers,
	KeyEvents,
	KeyRatings,
	KeyAttendance,
	KeyAssessments,
	KeySettings,
}

// Store is a synchronous key/value store. There is exactly one logical
// writer, so no locking is required beyond what the backend provides.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// StoreEntry is the single table backing the database store.
type StoreEntry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte `gorm:"type:jsonb;not null"`
}

type DBStore struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *DBStore {
	return &DBStore{DB: db}
}

func (s *DBStore) Get(key string) ([]byte, bool, error) {
	var entry StoreEntry
	result := s.DB.First(&entry, "key = ?", key)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return entry.Value, true, nil
}

func (s *DBStore) Set(key string, value []byte) error {
	entry := StoreEntry{Key: key, Value: value}
	result := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry)
	return result.Error
}

func (s *DBStore) Delete(key string) error {
	result := s.DB.Delete(&StoreEntry{}, "key = ?", key)
	return result.Error
}

// MemoryStore backs tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func loadCollection[T any](store Store, key string) ([]T, error) {
	data, ok, err := store.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	items := make([]T, 0)
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func saveCollection[T any](store Store, key string, items []T) error {
	t := time.Now()
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	err = store.Set(key, data)
	metrics.StoreWriteDuration.WithLabelValues(key).Observe(time.Since(t).Seconds())
	return err
}
