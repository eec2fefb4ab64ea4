// Package main provides the CLI entrypoint for the user lookup service.
// It wires subcommands (serve, migrate), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"userlookup/internal/config"
	"userlookup/pkg/domain"
	"userlookup/pkg/logger"
	"userlookup/pkg/storage"
	"userlookup/pkg/storage/firestore"
	"userlookup/pkg/storage/memory"
	"userlookup/pkg/storage/mongo"
	"userlookup/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func postgresOptions(cfg *config.Config) postgres.Options {
	return postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	}
}

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgresOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// openStorage creates the user store selected by cfg.Storage.Driver.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverFirestore:
		return firestore.New(ctx, firestore.Options{ //nolint: wrapcheck
			ProjectID:       cfg.Firestore.ProjectID,
			DatabaseID:      cfg.Firestore.DatabaseID,
			CredentialsFile: cfg.Firestore.CredentialsFile,
		})
	case config.DriverMongo:
		return mongo.New(ctx, mongo.Options{ //nolint: wrapcheck
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
	case config.DriverPostgres:
		return postgres.New(ctx, postgresOptions(cfg)) //nolint: wrapcheck
	case config.DriverMemory:
		users := make([]domain.User, 0, len(cfg.Memory.Users))
		for _, u := range cfg.Memory.Users {
			users = append(users, domain.User{UID: domain.UserID(u.UID), Email: u.Email})
		}

		return memory.New(users...), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// getStorage opens the configured store and returns it along with a cleanup
// function that closes it.
func getStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func()) {
	strg, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	return strg, func() {
		logger.Info(ctx, "closing storage...", zap.String("driver", cfg.Storage.Driver))
		if err := strg.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "userlookup",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err = logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
