package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/booking/model"
	"tavola/shared/constant"
	"tavola/shared/logger"
)

const (
	TableName = "booking_store"

	FieldNamespace  = "namespace"
	FieldPayload    = "payload"
	FieldModifiedAt = "modified_at"
)

type snapshotRow struct {
	Namespace  string    `db:"namespace"`
	Payload    string    `db:"payload"`
	ModifiedAt time.Time `db:"modified_at"`
}

// Postgres keeps one JSONB row per namespace in booking_store.
type Postgres struct {
	db        *postgres.Connection
	namespace string
	otel      otel.Otel
}

func NewPostgres(db *postgres.Connection, namespace string, otl otel.Otel) *Postgres {
	return &Postgres{
		db:        db,
		namespace: namespace,
		otel:      otl,
	}
}

func (p *Postgres) Load(ctx context.Context) (snapshot model.Snapshot, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", FieldPayload, TableName, FieldNamespace)
	scope.SetAttribute("query", query)

	var payload []byte

	err = p.db.Read.GetContext(ctx, &payload, query, p.namespace)
	if errors.Is(err, sql.ErrNoRows) {
		return decodeSnapshot(nil)
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Snapshot{}, fmt.Errorf("failed to load snapshot (%s): %w", p.namespace, err)
	}

	return decodeSnapshot(payload)
}

func (p *Postgres) Save(ctx context.Context, snapshot model.Snapshot) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		"INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s) VALUES (:%[2]s, :%[3]s, :%[4]s) "+
			"ON CONFLICT (%[2]s) DO UPDATE SET %[3]s = EXCLUDED.%[3]s, %[4]s = EXCLUDED.%[4]s",
		TableName, FieldNamespace, FieldPayload, FieldModifiedAt,
	)
	scope.SetAttribute("query", query)

	_, err = p.db.Write.NamedExecContext(ctx, query, snapshotRow{
		Namespace:  p.namespace,
		Payload:    string(raw),
		ModifiedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save snapshot (%s): %w", p.namespace, err)
	}

	return nil
}
