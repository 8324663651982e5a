package session

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"multi-agent-code-assistant/internal/agent/orchestrator"
	pkgLog "multi-agent-code-assistant/pkg/log"
)

// DefaultCapacity bounds the number of live conversations when the caller
// does not configure one.
const DefaultCapacity = 256

// Factory builds the orchestrator for a new conversation.
type Factory func(conversationID string) *orchestrator.Orchestrator

// Store maps conversation identifiers to orchestrator instances.
//
// Conversations are created on first reference and evicted least recently
// used once capacity is reached; evicted conversations lose their agent
// histories. The mutex makes lookup-or-create atomic against concurrent
// turns referencing the same identifier.
type Store struct {
	mu      sync.Mutex
	cache   *lru.Cache[string, *orchestrator.Orchestrator]
	factory Factory
	l       pkgLog.Logger
}

// New creates a session store. capacity <= 0 falls back to DefaultCapacity.
func New(capacity int, factory Factory, l pkgLog.Logger) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, *orchestrator.Orchestrator](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &Store{
		cache:   cache,
		factory: factory,
		l:       l,
	}, nil
}

// GetOrCreate returns the orchestrator for conversationID, creating it on
// first reference.
func (s *Store) GetOrCreate(conversationID string) *orchestrator.Orchestrator {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o, ok := s.cache.Get(conversationID); ok {
		return o
	}
	o := s.factory(conversationID)
	s.cache.Add(conversationID, o)
	return o
}

// Reset clears the agent histories of an existing conversation. Unknown
// identifiers are reported.
func (s *Store) Reset(conversationID string) error {
	s.mu.Lock()
	o, ok := s.cache.Get(conversationID)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown conversation: %q", conversationID)
	}
	o.Reset()
	return nil
}

// Delete removes a conversation. Deleting an unknown identifier is a no-op.
func (s *Store) Delete(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Remove(conversationID)
}

// List returns the identifiers of live conversations, least recently used
// first.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Keys()
}

// Len returns the number of live conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
