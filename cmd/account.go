package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/types"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}

		email, password := strings.TrimSpace(loginEmail), loginPassword
		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email).Validate(requireValue("email")),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password).Validate(requireValue("password")),
			))
			if err := form.RunWithContext(cmd.Context()); err != nil {
				return err
			}
		}

		result, err := cli.svc.client.Login(cmd.Context(), strings.TrimSpace(email), password)
		if err != nil {
			return err
		}
		if err := cli.store.SetAuth(result.Token, result.User); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}

		user := mapper.UserToProto(result.User)
		return printResult(cmd.OutOrStdout(), user, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "Logged in as %s (%s plan)\n", user.Username, user.Plan)
			return err
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}
		if ctx, err := cli.authedContext(cmd.Context()); err == nil {
			if err := cli.svc.client.Logout(ctx); err != nil {
				logrus.WithError(err).Warn("logout_request_failed")
			}
		}
		if err := cli.store.Clear(); err != nil {
			return err
		}

		return printResult(cmd.OutOrStdout(), &types.MessageResponse{Message: "Logged out"}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "Logged out")
			return err
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed in user and plan",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}
		ctx, err := cli.authedContext(cmd.Context())
		if err != nil {
			return err
		}
		refreshed, err := cli.store.Refresh(ctx)
		if err != nil {
			return err
		}

		user := mapper.UserToProto(refreshed)
		return printResult(cmd.OutOrStdout(), user, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s <%s>\nPlan:   %s\nPoints: %d (level %d)\n",
				user.Username, user.Email, refreshed.Plan.DisplayName(), user.TotalPoints, user.Level)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when empty)")
}

func requireValue(name string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}
