package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/booking/model"
	"tavola/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
)

var (
	errUnknownDriver = errors.New("unknown storage driver")
	errNotConnected  = errors.New("storage backend not connected")
)

// Storage is the durable side of the booking store. Implementations hold
// one snapshot per namespace and replace it wholesale on Save.
type Storage interface {
	Load(ctx context.Context) (model.Snapshot, error)
	Save(ctx context.Context, snapshot model.Snapshot) error
}

// New selects the storage backend named by STORAGE_DRIVER.
func New(cfg *config.Config, redisClient *goRedis.Client, db *postgres.Connection, otl otel.Otel) (Storage, error) {
	namespace := cfg.Storage.Namespace

	switch cfg.Storage.Driver {
	case constant.StorageDriverMemory:
		return NewMemory(), nil
	case constant.StorageDriverFile, constant.Empty:
		return NewFile(cfg.Storage.FilePath, otl), nil
	case constant.StorageDriverRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("%s: %w", constant.StorageDriverRedis, errNotConnected)
		}

		return NewRedis(redisClient, namespace, otl), nil
	case constant.StorageDriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("%s: %w", constant.StorageDriverPostgres, errNotConnected)
		}

		return NewPostgres(db, namespace, otl), nil
	}

	return nil, fmt.Errorf("%q: %w", cfg.Storage.Driver, errUnknownDriver)
}

func encodeSnapshot(snapshot model.Snapshot) ([]byte, error) {
	if snapshot.Bookings == nil {
		snapshot.Bookings = []model.Booking{}
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s snapshot: %w", model.EntityName, err)
	}

	return raw, nil
}

func decodeSnapshot(raw []byte) (model.Snapshot, error) {
	snapshot := model.Snapshot{Bookings: []model.Booking{}}
	if len(raw) == 0 {
		return snapshot, nil
	}

	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to decode %s snapshot: %w", model.EntityName, err)
	}

	if snapshot.Bookings == nil {
		snapshot.Bookings = []model.Booking{}
	}

	return snapshot, nil
}
