package mocks

import (
	"context"
	"sync"

	"tavola/infras/otel"
)

// Recorder is an otel.Otel that keeps every span it opens in memory so
// tests can assert on what was traced.
type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

// NewOtel returns a Recorder behind the otel.Otel interface for tests that
// do not inspect spans.
func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	span := &Span{
		Scope:      scopeName,
		Name:       spanName,
		Attributes: map[string]any{},
		mu:         &r.mu,
	}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return ctx, span
}

// Spans returns a snapshot of every span opened so far, in order.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]Span, len(r.spans))
	for i, s := range r.spans {
		res[i] = s.snapshot()
	}

	return res
}

// Find returns the spans with the given name.
func (r *Recorder) Find(name string) []Span {
	var res []Span

	for _, s := range r.Spans() {
		if s.Name == name {
			res = append(res, s)
		}
	}

	return res
}
