// Package memory implements an in-memory report archive for tests.
package memory

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"auditcore/internal/archive/core"
)

// Compile-time contract assertion ensuring the store satisfies the archive interface.
var _ core.Store = (*Store)(nil)

type entry struct {
	info core.Info
	data []byte
}

// Store keeps archived reports in process memory.
type Store struct {
	mu      sync.RWMutex
	reports map[string]entry
}

// New returns an empty in-memory archive.
func New() *Store { return &Store{reports: make(map[string]entry)} }

// Driver returns the archive driver identifier.
func (s *Store) Driver() core.Driver { return core.DriverMemory }

// Put stores (or replaces) the report under key.
func (s *Store) Put(_ context.Context, key string, r io.Reader, opts core.PutOptions) (core.Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Info{}, err
	}
	info := core.Info{
		Key:          key,
		Size:         int64(len(data)),
		ContentType:  opts.ContentType,
		LastModified: time.Now().UTC(),
	}
	s.mu.Lock()
	s.reports[key] = entry{info: info, data: data}
	s.mu.Unlock()
	return info, nil
}

// Get returns metadata and a reader for the report stored under key.
func (s *Store) Get(_ context.Context, key string) (core.Info, io.ReadCloser, error) {
	s.mu.RLock()
	e, ok := s.reports[key]
	s.mu.RUnlock()
	if !ok {
		return core.Info{}, nil, core.ErrNotFound
	}
	data := make([]byte, len(e.data))
	copy(data, e.data)
	return e.info, io.NopCloser(bytes.NewReader(data)), nil
}

// Head returns metadata for the report stored under key.
func (s *Store) Head(_ context.Context, key string) (core.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.reports[key]
	if !ok {
		return core.Info{}, core.ErrNotFound
	}
	return e.info, nil
}

// Delete removes the report under key, returning true if it existed.
func (s *Store) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[key]; !ok {
		return false, nil
	}
	delete(s.reports, key)
	return true, nil
}

// List returns all archived reports whose key starts with prefix, sorted by key.
func (s *Store) List(_ context.Context, prefix string) ([]core.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Info, 0, len(s.reports))
	for key, e := range s.reports {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			out = append(out, e.info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
