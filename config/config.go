package config

import (
	"fmt"
	"net"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"     default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"tavola"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		Business Business `envconfig:"BUSINESS"`
	} `envconfig:"APP"`

	Storage struct {
		Driver    string `envconfig:"DRIVER"    default:"file"`
		Namespace string `envconfig:"NAMESPACE" default:"booking-store"`
		FilePath  string `envconfig:"FILE_PATH" default:"data/booking-store.json"`
	} `envconfig:"STORAGE"`

	Cache struct {
		Redis struct {
			Primary struct {
				Enable   bool   `envconfig:"ENABLE"`
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			Enable         bool         `envconfig:"ENABLE"`
			MaxRetry       int          `envconfig:"MAX_RETRY"`
			RetryWaitTime  int          `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string       `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool         `envconfig:"AUTO_MIGRATE"`
			Prefix         string       `envconfig:"PREFIX"`
			Read           PostgresNode `envconfig:"READ"`
			Write          PostgresNode `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Enable   bool   `envconfig:"ENABLE"`
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			Enable          bool   `envconfig:"ENABLE"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

// PostgresNode is one side of the read/write Postgres split.
type PostgresNode struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE"`
}

// DSN renders the lib/pq connection URL, prepending prefix to the database name.
func (n PostgresNode) DSN(prefix string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		n.Username,
		n.Password,
		net.JoinHostPort(n.Host, n.Port),
		prefix+n.Name,
		n.SSLMode,
	)
}

// Business is the identity of the venue. Values still holding an unfilled
// "{PLACEHOLDER}" template fall back to the defaults.
type Business struct {
	Name       string   `envconfig:"NAME"        default:"Our House"`
	Location   string   `envconfig:"LOCATION"    default:"Your City"`
	Type       string   `envconfig:"TYPE"        default:"restaurant"`
	OwnerPhone string   `envconfig:"OWNER_PHONE"`
	ChatURL    string   `envconfig:"CHAT_URL"    default:"https://wa.me"`
	MapURL     string   `envconfig:"MAP_URL"     default:"https://www.google.com/maps/dir/?api=1&destination="`
	Services   []string `envconfig:"SERVICES"    default:"Chef's Tasting - 5 course,Signature Table - a la carte,Lounge Experience,Curated Takeaway"`
}

const (
	defaultBusinessName     = "Our House"
	defaultBusinessLocation = "Your City"
)

// DisplayName returns the business name, or the default when it is unset.
func (b Business) DisplayName() string {
	return CleanPlaceholder(b.Name, defaultBusinessName)
}

// DisplayLocation returns the location label, or the default when it is unset.
func (b Business) DisplayLocation() string {
	return CleanPlaceholder(b.Location, defaultBusinessLocation)
}

// CleanPlaceholder returns fallback for empty values and unfilled
// "{TEMPLATE}" markers.
func CleanPlaceholder(value, fallback string) string {
	if value == "" {
		return fallback
	}

	if len(value) >= 2 && value[0] == '{' && value[len(value)-1] == '}' {
		return fallback
	}

	return value
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Warn().Err(err).Msg("Configuration initialized without .env file")
		}
	}

	return &conf
}
