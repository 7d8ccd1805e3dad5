// Package store contains the shared key/value state that installation
// stages use to hand results to each other.
//
// A GlobalStore is created once before the first stage runs and outlives
// any single stage. Values are marshaled to JSON at Set time, so a stage
// publishing the same data twice stores byte-identical values, and later
// stages read exactly what was written regardless of in-memory types.
package store

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/osinstall/osinstall/internal/jsondb"
)

// StoreDBName is the name under which to save the store to the underlying
// jsondb.
const StoreDBName = "state"

// Null is the explicit invalid/absent marker. Writing it under a key
// records "no value" without removing the key.
var Null = json.RawMessage("null")

type GlobalStore struct {
	values map[string]json.RawMessage

	mu       sync.RWMutex // protects values
	stateDir *string
	db       *jsondb.JSONDatabase
}

// New creates a GlobalStore. If stateDir is non-nil, previously persisted
// state is loaded from it and every change is written back. A read failure
// is logged and the store starts empty; stages treat missing prior state
// as a clean slate.
func New(stateDir *string) *GlobalStore {
	values := make(map[string]json.RawMessage)
	var db *jsondb.JSONDatabase

	if stateDir != nil {
		db = jsondb.New(*stateDir, 0600)
		_, err := db.Read(StoreDBName, &values)
		if err != nil {
			logrus.Warnf("cannot read stored state: %v", err)
			values = make(map[string]json.RawMessage)
		}
	}

	return &GlobalStore{
		values:   values,
		stateDir: stateDir,
		db:       db,
	}
}

// Set marshals value to JSON and stores it under key. A nil value (or
// store.Null) records the explicit absent marker. Marshaling or
// persistence failures are logged, not returned; publishing stages have no
// failure outcome.
func (s *GlobalStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.Warnf("cannot store value for %q: %v", key, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = raw

	if s.stateDir != nil {
		if err := s.db.Write(StoreDBName, s.values); err != nil {
			logrus.Warnf("cannot persist state: %v", err)
		}
	}
}

// Unset removes key from the store entirely. To record an explicitly
// absent value, use Set with store.Null instead.
func (s *GlobalStore) Unset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	if s.stateDir != nil {
		if err := s.db.Write(StoreDBName, s.values); err != nil {
			logrus.Warnf("cannot persist state: %v", err)
		}
	}
}

// Get returns the raw JSON stored under key and whether the key exists.
func (s *GlobalStore) Get(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[key]
	return raw, ok
}

// Load unmarshals the value stored under key into v, returning whether
// the key exists.
func (s *GlobalStore) Load(key string, v interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

// Keys returns the sorted list of keys present in the store.
func (s *GlobalStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
