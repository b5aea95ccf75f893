package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/service"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/session"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/config"
)

var reconcileWorker bool

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Re-read payments whose tracking ended unresolved",
	Long: "Re-read once the payments whose watch timed out or was stopped, " +
		"so payments resolved after the polling ceiling are recorded.",
	Run: func(_ *cobra.Command, _ []string) {
		runCommand(
			"reconcile_payments",
			reconcileWorker,
			func(cfg *config.Config) time.Duration { return cfg.Jobs.ReconcileInterval },
			func(s *service.PaymentService, ctx context.Context) error {
				return s.RunReconcileBatch(ctx)
			},
		)
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().BoolVar(&reconcileWorker, "worker", false, "Run continuously using configured interval")
}

func runCommand(
	name string,
	worker bool,
	intervalResolver func(cfg *config.Config) time.Duration,
	fn func(s *service.PaymentService, ctx context.Context) error,
) {
	cfg, paymentService, token, cleanup := mustCreatePaymentService()
	defer cleanup()

	if worker {
		runWorker(name, intervalResolver(cfg), token, paymentService, fn)
		return
	}

	ctx := backend.WithToken(context.Background(), token)
	runJob(name, func() error { return fn(paymentService, ctx) })
}

func runWorker(
	name string,
	interval time.Duration,
	token string,
	paymentService *service.PaymentService,
	fn func(s *service.PaymentService, ctx context.Context) error,
) {
	if interval <= 0 {
		logrus.WithField("job", name).Fatal("invalid worker interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(backend.WithToken(context.Background(), token))
	defer cancel()

	runJob(name, func() error { return fn(paymentService, ctx) })

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case <-quit:
			logrus.WithField("job", name).Info("Worker shutdown requested")
			return
		case <-ticker.C:
			runJob(name, func() error { return fn(paymentService, ctx) })
		}
	}
}

func mustCreatePaymentService() (*config.Config, *service.PaymentService, string, func()) {
	cfg := mustLoadConfig()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	client := newBackendClient(cfg)
	token, err := jobToken(cfg, client)
	if err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to resolve backend token")
	}

	svc := newServices(cfg, client, session.NewProfileProvider(client), db)

	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, svc.payments, token, cleanup
}

// jobToken prefers the configured service token and falls back to the token
// of the local session.
func jobToken(cfg *config.Config, client *backend.Client) (string, error) {
	if cfg.Backend.ServiceToken != "" {
		return cfg.Backend.ServiceToken, nil
	}
	store := session.NewStore(session.NewTOMLFile(cfg.Session.Path), client)
	if err := store.Load(); err != nil {
		return "", err
	}
	if !store.Authenticated(time.Now()) {
		return "", errors.New("set BACKEND_SERVICE_TOKEN or run login first")
	}
	return store.Token(), nil
}

func runJob(name string, fn func() error) {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Error("job_failed")
		return
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
}
