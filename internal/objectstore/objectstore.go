// Package objectstore abstracts the external object-storage service holding
// lot photos.
package objectstore

import (
	"fmt"
	"sync"
)

// ObjectStore is the object-storage collaborator. Upload returns the public
// URL of the stored object.
type ObjectStore interface {
	Upload(bucket, key string, data []byte, contentType string) (string, error)
}

// Object is one stored blob.
type Object struct {
	Data        []byte
	ContentType string
}

// MemoryStore keeps objects in memory and serves mem:// URLs. It stands in
// for the remote object-storage service in local runs and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]Object // key: bucket/key
}

// NewMemoryStore creates an empty in-memory object store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]Object)}
}

// Upload stores a copy of data and returns its URL
func (s *MemoryStore) Upload(bucket, key string, data []byte, contentType string) (string, error) {
	if bucket == "" || key == "" {
		return "", fmt.Errorf("objectstore: bucket and key are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+key] = Object{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
	}
	return fmt.Sprintf("mem://%s/%s", bucket, key), nil
}

// Get returns a stored object; intended for tests.
func (s *MemoryStore) Get(bucket, key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[bucket+"/"+key]
	return obj, ok
}
