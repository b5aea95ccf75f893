package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/cache"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/payment"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/repository"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/service"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/config"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// services is the object graph shared by the gateway, the jobs and the CLI.
// Only the user provider differs between them.
type services struct {
	client        *backend.Client
	entitlements  *service.EntitlementService
	subscriptions *service.SubscriptionService
	payments      *service.PaymentService
}

func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	return cfg
}

func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	if cfg.Driver == config.DriverSQLite {
		// A single writer avoids SQLITE_BUSY between the watch goroutines.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}
	return db, nil
}

// openOptionalDatabase returns a nil db when no DSN is configured; tracking
// records then live only in memory.
func openOptionalDatabase(cfg config.DatabaseConfig) (*sql.DB, func(), error) {
	if cfg.RequireDatabase() != nil {
		return nil, func() {}, nil
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}
	return db, cleanup, nil
}

func newBackendClient(cfg *config.Config) *backend.Client {
	return backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
}

func newRegistry(cfg *config.Config, client *backend.Client) *payment.Registry {
	tracker := payment.NewTracker(client, payment.Config{
		PollInterval: cfg.Tracking.PollInterval,
		MaxDuration:  cfg.Tracking.MaxDuration,
		SuccessDelay: cfg.Tracking.SuccessDelay,
	}, nil)
	return payment.NewRegistry(tracker)
}

type userProvider interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
	Refresh(ctx context.Context) (*entity.User, error)
}

// newServices wires the services over client. db may be nil.
func newServices(cfg *config.Config, client *backend.Client, users userProvider, db *sql.DB) *services {
	entitlements := service.NewEntitlementService(client, users, cache.New())
	registry := newRegistry(cfg, client)

	var payments *service.PaymentService
	if db != nil {
		trackings := repository.NewPaymentTrackingRepository(db)
		payments = service.NewPaymentService(client, users, registry, trackings, entitlements, cfg.Jobs)
	} else {
		payments = service.NewPaymentService(client, users, registry, nil, entitlements, cfg.Jobs)
	}

	return &services{
		client:        client,
		entitlements:  entitlements,
		subscriptions: service.NewSubscriptionService(client, users, cfg.App.PublicBaseURL),
		payments:      payments,
	}
}
