package repository

import (
	"context"
	"sync"

	"tavola/internal/domains/booking/model"
)

// Memory keeps the encoded snapshot in process. It is the storage used by
// tests and by STORAGE_DRIVER=memory.
type Memory struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (model.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return decodeSnapshot(m.raw)
}

func (m *Memory) Save(_ context.Context, snapshot model.Snapshot) error {
	raw, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.raw = raw

	return nil
}

// Raw returns the last encoded record.
func (m *Memory) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]byte(nil), m.raw...)
}
