package mocks

import (
	"maps"
	"slices"
	"sync"

	"tavola/infras/otel"
)

// Span is a recorded otel.Scope.
type Span struct {
	Scope      string
	Name       string
	Events     []string
	Errors     []error
	Attributes map[string]any
	Ended      bool

	mu *sync.Mutex
}

// NewScope returns a detached span that records into nothing shared.
func NewScope() otel.Scope {
	return &Span{Attributes: map[string]any{}, mu: &sync.Mutex{}}
}

func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Span) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Span) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Span) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Span) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Span) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Span) snapshot() Span {
	return Span{
		Scope:      s.Scope,
		Name:       s.Name,
		Events:     slices.Clone(s.Events),
		Errors:     slices.Clone(s.Errors),
		Attributes: maps.Clone(s.Attributes),
		Ended:      s.Ended,
	}
}
