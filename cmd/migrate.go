package cmd

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the payment tracking tables",
	Run: func(_ *cobra.Command, _ []string) {
		cfg := mustLoadConfig()

		db, err := openDatabase(cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to connect to database")
		}
		defer db.Close()

		statements, err := repository.Schema(cfg.Database.Driver)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to load schema")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		for _, statement := range statements {
			if _, err := db.ExecContext(ctx, statement); err != nil {
				logrus.WithError(err).Fatal("Failed to apply schema")
			}
		}
		logrus.WithField("driver", cfg.Database.Driver).Info("Schema applied")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
