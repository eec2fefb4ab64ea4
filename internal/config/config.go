package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage drivers understood by the serve command.
const (
	DriverFirestore = "firestore"
	DriverMongo     = "mongo"
	DriverPostgres  = "postgres"
	DriverMemory    = "memory"
)

// MemoryUser is a user record seeded into the in-memory store.
type MemoryUser struct {
	Email string `yaml:"email"`
	UID   string `yaml:"uid"`
}

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigin is sent as Access-Control-Allow-Origin
		AllowedOrigin string `env:"HTTP_ALLOWED_ORIGIN" env-default:"*" yaml:"allowedOrigin"`
		// EnablePprof mounts the profiling endpoints under /debug/pprof/
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Storage selects the user store backend
	Storage struct {
		// Driver is one of firestore, mongo, postgres, memory
		Driver string `env:"STORAGE_DRIVER" env-default:"firestore" yaml:"driver"`
	} `yaml:"storage"`

	// Firestore contains the Cloud Firestore connection settings
	Firestore struct {
		// ProjectID is the Google Cloud project holding the database
		ProjectID string `env:"FIRESTORE_PROJECT_ID" yaml:"projectId"`
		// DatabaseID selects a named database; empty means the default database
		DatabaseID string `env:"FIRESTORE_DATABASE_ID" yaml:"databaseId"`
		// CredentialsFile is a service account key file; empty means application default credentials
		CredentialsFile string `env:"FIRESTORE_CREDENTIALS_FILE" yaml:"credentialsFile"`
	} `yaml:"firestore"`

	// Mongo contains the MongoDB connection settings
	Mongo struct {
		// URI is the MongoDB connection string
		URI string `env:"MONGO_URI" env-default:"mongodb://localhost:27017" yaml:"uri"`
		// Database is the database holding the users collection
		Database string `env:"MONGO_DATABASE" env-default:"userlookup" yaml:"database"`
		// ConnectTimeout bounds the initial connection and ping
		ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" env-default:"10s" yaml:"connectTimeout"`
	} `yaml:"mongo"`

	// Database contains the PostgreSQL connection settings
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"userlookup" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Memory seeds the in-memory store, in lookup order
	Memory struct {
		Users []MemoryUser `yaml:"users"`
	} `yaml:"memory"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Validate checks settings whose combination cleanenv cannot express.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFirestore:
		if c.Firestore.ProjectID == "" {
			return fmt.Errorf("firestore.projectId is required for the %s driver", DriverFirestore)
		}
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}

// Load receives the path for yaml config file and returns a filled, validated Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
