// Package workspace holds the most recent compilation result delivered by the compiler
// host and flattens it on request.
package workspace

import (
	"fmt"
	"maps"
	"path"
	"sync"

	"github.com/LegacyCodeHQ/solflat/compilation"
	"github.com/LegacyCodeHQ/solflat/flatten"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of flattened outputs a session keeps.
const DefaultCacheSize = 16

// Session owns the single slot holding the latest compilation result.
// Each delivery replaces the slot and bumps the revision; flattening always
// works on a snapshot taken when it starts.
type Session struct {
	mu       sync.RWMutex
	latest   *compilation.Result
	revision uint64
	cache    *lru.Cache[uint64, string]
	opts     []flatten.Option
}

// NewSession creates an empty session caching up to cacheSize flattened outputs.
func NewSession(cacheSize int, opts ...flatten.Option) (*Session, error) {
	cache, err := lru.New[uint64, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create flatten cache: %w", err)
	}
	return &Session{cache: cache, opts: opts}, nil
}

// Deliver replaces the latest compilation result and returns its revision.
func (s *Session) Deliver(result compilation.Result) uint64 {
	snapshot := compilation.Result{
		Target:  result.Target,
		Sources: maps.Clone(result.Sources),
		ASTs:    maps.Clone(result.ASTs),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &snapshot
	s.revision++
	return s.revision
}

// Latest returns the latest compilation result and its revision.
func (s *Session) Latest() (compilation.Result, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return compilation.Result{}, 0, compilation.ErrNoCompilationAvailable
	}
	return *s.latest, s.revision, nil
}

// Snapshot is one delivered compilation result as seen by a single read of the session.
type Snapshot struct {
	Revision uint64
	Target   string
	Label    string
	Text     string
}

// Flatten flattens the target of the latest compilation result.
func (s *Session) Flatten() (string, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return "", err
	}
	return snapshot.Text, nil
}

// Snapshot flattens the latest compilation result and returns the text together with the
// revision and label of that same result. On a flatten failure the returned snapshot still
// carries the revision, target and label.
func (s *Session) Snapshot() (Snapshot, error) {
	result, revision, err := s.Latest()
	if err != nil {
		return Snapshot{Label: statusLabel("")}, err
	}

	snapshot := Snapshot{
		Revision: revision,
		Target:   result.Target,
		Label:    statusLabel(result.Target),
	}

	if text, ok := s.cache.Get(revision); ok {
		snapshot.Text = text
		return snapshot, nil
	}

	text, err := flatten.FlattenTarget(result, s.opts...)
	if err != nil {
		return snapshot, err
	}
	s.cache.Add(revision, text)
	snapshot.Text = text
	return snapshot, nil
}

// StatusLabel describes the action available for the loaded target, e.g. "Flatten Token.sol".
func (s *Session) StatusLabel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return statusLabel("")
	}
	return statusLabel(s.latest.Target)
}

func statusLabel(target string) string {
	if target == "" {
		return "Flatten"
	}
	return "Flatten " + path.Base(target)
}
