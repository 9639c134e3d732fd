package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ObjectStore is the binary object store boundary: content goes in under a
// namespace, a publicly resolvable URL comes back. Upload failures propagate
// to the caller untouched.
type ObjectStore interface {
	Put(ctx context.Context, namespace string, content []byte, contentType string) (string, error)
}

// MemoryStore holds uploads in memory and serves deterministic URLs. Used in
// tests and local development where no real bucket exists.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	baseURL string
}

func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = "https://storage.local"
	}
	return &MemoryStore{
		objects: make(map[string][]byte),
		baseURL: baseURL,
	}
}

func (s *MemoryStore) Put(ctx context.Context, namespace string, content []byte, contentType string) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("empty content for namespace %s", namespace)
	}

	key := namespace + "/" + uuid.New().String()

	s.mu.Lock()
	s.objects[key] = content
	s.mu.Unlock()

	return s.baseURL + "/" + key, nil
}

// Get exists for test assertions; production reads go through the public URL.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.objects[key]
	return content, ok
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
