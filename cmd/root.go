package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "inteliwallet-billing",
	Short: "InteliWallet plan entitlements and payment tracking",
	Long: "Gateway and command line client for InteliWallet plan entitlements, " +
		"plan upgrades and PIX payment tracking.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", outputText, "Output format: text, json or yaml")
}

// Execute runs the root command. Client commands are cancelled on SIGINT or
// SIGTERM; serve and the job workers handle signals themselves.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
