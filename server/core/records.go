package core

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/quasilyte/gdata"
	"github.com/vmihailenco/msgpack/v5"
)

const recordsKey = "records"

// Record is the best run seen on one arena.
type Record struct {
	BestWave  int   `msgpack:"best_wave"`
	BestKills int   `msgpack:"best_kills"`
	BestLevel int   `msgpack:"best_level"`
	Runs      int   `msgpack:"runs"`
	UpdatedAt int64 `msgpack:"updated_at"` // Unix seconds
}

// itemStore is the part of gdata.Manager the record store uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// RecordStore keeps best-run records per arena name.
type RecordStore struct {
	store   itemStore
	records map[string]Record
	mu      sync.Mutex
}

// OpenRecords opens the gdata storage for appName and loads existing records.
func OpenRecords(appName string) (*RecordStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open record storage: %w", err)
	}
	return newRecordStore(m)
}

func newRecordStore(store itemStore) (*RecordStore, error) {
	r := &RecordStore{
		store:   store,
		records: make(map[string]Record),
	}

	data, err := store.LoadItem(recordsKey)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if data == nil {
		// Nothing saved yet
		return r, nil
	}
	if err := msgpack.Unmarshal(data, &r.records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		r.records = make(map[string]Record)
	}
	return r, nil
}

// Get returns the record for an arena.
func (r *RecordStore) Get(arena string) (Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[arena]
	return rec, ok
}

// Observe folds a run's progress into the arena's record and saves it when
// something improved. It reports whether the record changed.
func (r *RecordStore) Observe(arena string, wave, kills, level int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.records[arena]
	changed := false
	if wave > rec.BestWave {
		rec.BestWave = wave
		changed = true
	}
	if kills > rec.BestKills {
		rec.BestKills = kills
		changed = true
	}
	if level > rec.BestLevel {
		rec.BestLevel = level
		changed = true
	}
	if !changed {
		return false, nil
	}
	rec.UpdatedAt = time.Now().Unix()
	r.records[arena] = rec
	return true, r.save()
}

// FinishRun counts a completed run.
func (r *RecordStore) FinishRun(arena string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.records[arena]
	rec.Runs++
	rec.UpdatedAt = time.Now().Unix()
	r.records[arena] = rec
	return r.save()
}

func (r *RecordStore) save() error {
	data, err := msgpack.Marshal(r.records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := r.store.SaveItem(recordsKey, data); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}
