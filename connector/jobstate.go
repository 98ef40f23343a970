package connector

import (
	"context"
	"fmt"
	"sync"
)

// JobState is the host-provided sink that accumulates produced entities
// and relationships for later graph ingestion. It is append-only from
// the connector's point of view.
type JobState interface {
	AddEntity(ctx context.Context, entity *Entity) error
	AddRelationship(ctx context.Context, relationship *Relationship) error
}

// InMemoryJobState is a JobState that accumulates everything in memory.
// It backs the CLI runner and tests; host platforms supply their own
// implementation.
type InMemoryJobState struct {
	mu               sync.Mutex
	entities         []*Entity
	entityKeys       map[string]struct{}
	relationships    []*Relationship
	relationshipKeys map[string]struct{}
}

// NewInMemoryJobState creates an empty in-memory sink.
func NewInMemoryJobState() *InMemoryJobState {
	return &InMemoryJobState{
		entityKeys:       make(map[string]struct{}),
		relationshipKeys: make(map[string]struct{}),
	}
}

// AddEntity appends an entity, rejecting duplicate keys.
func (s *InMemoryJobState) AddEntity(_ context.Context, entity *Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entityKeys[entity.Key]; exists {
		return fmt.Errorf("duplicate entity key %q", entity.Key)
	}
	s.entityKeys[entity.Key] = struct{}{}
	s.entities = append(s.entities, entity)
	return nil
}

// AddRelationship appends a relationship, rejecting duplicate keys.
func (s *InMemoryJobState) AddRelationship(_ context.Context, relationship *Relationship) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.relationshipKeys[relationship.Key]; exists {
		return fmt.Errorf("duplicate relationship key %q", relationship.Key)
	}
	s.relationshipKeys[relationship.Key] = struct{}{}
	s.relationships = append(s.relationships, relationship)
	return nil
}

// Entities returns the accumulated entities in insertion order.
func (s *InMemoryJobState) Entities() []*Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Entity(nil), s.entities...)
}

// Relationships returns the accumulated relationships in insertion order.
func (s *InMemoryJobState) Relationships() []*Relationship {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Relationship(nil), s.relationships...)
}
