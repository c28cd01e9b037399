package postgres

//nolint:revive
import (
	"time"

	"tavola/config"
	"tavola/helper"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConnections = 10
	maxOpenConnections = 10
)

// Connection holds the read and write pools behind the booking store.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens the read and write pools. It returns nil when Postgres is not
// enabled.
func New(config *config.Config) *Connection {
	if !config.DB.Postgres.Enable {
		log.Info().Msg("Postgres disabled, skipping connection")

		return nil
	}

	conn := &Connection{
		Read:  Connect(config, "read", config.DB.Postgres.Read),
		Write: Connect(config, "write", config.DB.Postgres.Write),
	}

	if config.DB.Postgres.AutoMigrate {
		if err := helper.Up(config); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate booking store schema")
		}
	}

	return conn
}

// Connect dials node, retrying up to MaxRetry times. It returns nil once
// every attempt failed.
func Connect(config *config.Config, role string, node config.PostgresNode) *sqlx.DB {
	pg := config.DB.Postgres
	wait := time.Duration(pg.RetryWaitTime) * time.Second

	logger := log.With().
		Str("role", role).
		Str("host", node.Host).
		Str("port", node.Port).
		Str("database", pg.Prefix+node.Name).
		Logger()

	for attempt := 1; attempt <= pg.MaxRetry; attempt++ {
		db, err := sqlx.Connect(driverName, node.DSN(pg.Prefix))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			logger.Info().Msg("Connected to booking store database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")
		time.Sleep(wait)
	}

	return nil
}
