package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"reflect"
)

// Store is a best-effort JSON document store. Get never fails the caller:
// a missing key, unreadable backend, or malformed stored document leaves
// the caller's default in place. Set returns its error so the caller can
// decide whether persistence failure is worth surfacing; in-memory state
// stays authoritative either way. Writes are last-write-wins.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Get unmarshals the document at key into out. It returns false, leaving
// out untouched, when the key is absent or the stored value is unusable.
func (s *Store) Get(key string, out any) bool {
	raw, ok, err := s.kv.Read(key)
	if err != nil {
		log.Printf("storage: read %q: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	outValue := reflect.ValueOf(out)
	if outValue.Kind() != reflect.Pointer || outValue.IsNil() {
		log.Printf("storage: Get target for %q must be a non-nil pointer", key)
		return false
	}
	// Decode into a scratch value first; json.Unmarshal half-populates its
	// target when a type mismatch follows valid fields, and that would
	// corrupt the caller's default.
	scratch := reflect.New(outValue.Elem().Type())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		log.Printf("storage: malformed document at %q: %v", key, err)
		return false
	}
	outValue.Elem().Set(scratch.Elem())
	return true
}

func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize document for %q: %w", key, err)
	}
	if err := s.kv.Write(key, raw); err != nil {
		return fmt.Errorf("write document %q: %w", key, err)
	}
	return nil
}
