package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/payment"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/service"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/tui"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/types"
)

var (
	trackPlain     bool
	upgradeNoTrack bool
)

var upgradeCmd = &cobra.Command{
	Use:       "upgrade [standard|plus]",
	Short:     "Start a PIX payment to upgrade the plan",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"standard", "plus"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}
		ctx, err := cli.authedContext(cmd.Context())
		if err != nil {
			return err
		}

		plan := ""
		if len(args) == 1 {
			plan = args[0]
		} else {
			options := make([]huh.Option[string], 0, 2)
			for _, tier := range []entity.PlanTier{entity.PlanStandard, entity.PlanPlus} {
				if tier == cli.store.Plan() {
					continue
				}
				label := fmt.Sprintf("%s (%s/month)", tier.DisplayName(), formatCents(entity.LimitsFor(tier).PriceCents))
				options = append(options, huh.NewOption(label, string(tier)))
			}
			if len(options) == 0 {
				return service.ErrAlreadyOnPlan
			}
			picker := huh.NewSelect[string]().Title("Choose a plan").Options(options...).Value(&plan)
			if err := huh.NewForm(huh.NewGroup(picker)).RunWithContext(ctx); err != nil {
				return err
			}
		}

		p, err := cli.svc.subscriptions.SelectPlan(ctx, &types.SelectPlanRequest{Plan: plan})
		if err != nil {
			return err
		}

		resp := &types.SelectPlanResponse{Payment: mapper.PaymentToProto(p), Tracking: !upgradeNoTrack}
		if err := printResult(cmd.OutOrStdout(), resp, func(w io.Writer) error {
			return writePayment(w, resp.Payment)
		}); err != nil {
			return err
		}
		if upgradeNoTrack {
			return nil
		}
		return trackPayment(ctx, cmd.OutOrStdout(), cli, p.ID)
	},
}

var trackCmd = &cobra.Command{
	Use:   "track <payment-id>",
	Short: "Watch a payment until it is paid, fails or times out",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}
		ctx, err := cli.authedContext(cmd.Context())
		if err != nil {
			return err
		}
		return trackPayment(ctx, cmd.OutOrStdout(), cli, args[0])
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <redirect-url>",
	Short: "Load the payment a provider redirect points to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}
		redirect, err := url.Parse(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid redirect url: %w", err)
		}

		completion, err := cli.svc.payments.Complete(cli.store.Context(cmd.Context()), redirect.Query())
		if err != nil {
			var lookupErr *service.LookupError
			if errors.As(err, &lookupErr) {
				resp := &types.LookupErrorResponse{Error: lookupErr.Err.Error(), PaymentId: lookupErr.PaymentID, Params: lookupErr.Params}
				_ = printResult(cmd.ErrOrStderr(), resp, func(w io.Writer) error {
					return writeLookupError(w, resp)
				})
			}
			return err
		}

		resp := mapper.CompletionToProto(completion.PaymentID, completion.Payment, completion.User, 0)
		return printResult(cmd.OutOrStdout(), resp, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "%s\n%s\n\n", resp.Title, resp.Message); err != nil {
				return err
			}
			return writePayment(w, resp.Payment)
		})
	},
}

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Show the active subscription",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}
		ctx, err := cli.authedContext(cmd.Context())
		if err != nil {
			return err
		}
		item, err := cli.svc.subscriptions.ActiveSubscription(ctx)
		if err != nil {
			return err
		}

		resp := &types.SubscriptionResponse{Subscription: mapper.SubscriptionToProto(item)}
		return printResult(cmd.OutOrStdout(), resp, func(w io.Writer) error {
			sub := resp.Subscription
			if sub == nil {
				_, err := fmt.Fprintln(w, "No active subscription (Free plan)")
				return err
			}
			_, err := fmt.Fprintf(w, "%s  %s plan  %s\n", sub.Id, sub.Plan, sub.Status)
			if err == nil && sub.CurrentPeriodEnd != "" {
				renewal := "renews"
				if sub.CancelAtPeriodEnd {
					renewal = "ends"
				}
				_, err = fmt.Fprintf(w, "Current period %s on %s\n", renewal, sub.CurrentPeriodEnd)
			}
			return err
		})
	},
}

var subscriptionCancelCmd = &cobra.Command{
	Use:   "cancel <subscription-id>",
	Short: "Cancel a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}
		ctx, err := cli.authedContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := cli.svc.subscriptions.Cancel(ctx, strings.TrimSpace(args[0])); err != nil {
			return err
		}

		resp := &types.MessageResponse{Message: "Subscription canceled"}
		return printResult(cmd.OutOrStdout(), resp, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, resp.Message)
			return err
		})
	},
}

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List the payment history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli, err := newCLISession()
		if err != nil {
			return err
		}
		ctx, err := cli.authedContext(cmd.Context())
		if err != nil {
			return err
		}
		items, err := cli.svc.subscriptions.PaymentHistory(ctx)
		if err != nil {
			return err
		}

		resp := &types.PaymentsResponse{Payments: mapper.PaymentsToProto(items)}
		return printResult(cmd.OutOrStdout(), resp, func(w io.Writer) error {
			if len(resp.Payments) == 0 {
				_, err := fmt.Fprintln(w, "No payments")
				return err
			}
			for _, p := range resp.Payments {
				if _, err := fmt.Fprintf(w, "%-24s  %-10s  %12s  %s\n", p.Id, p.Status, formatCents(p.AmountCents), p.CreatedAt); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(subscriptionCmd)
	rootCmd.AddCommand(paymentsCmd)
	subscriptionCmd.AddCommand(subscriptionCancelCmd)

	upgradeCmd.Flags().BoolVar(&upgradeNoTrack, "no-track", false, "Do not watch the payment after creating it")
	upgradeCmd.Flags().BoolVar(&trackPlain, "plain", false, "Print status lines instead of the interactive view")
	trackCmd.Flags().BoolVar(&trackPlain, "plain", false, "Print status lines instead of the interactive view")
}

// trackPayment watches paymentID until it ends or ctx is cancelled and prints
// the final tracking state.
func trackPayment(ctx context.Context, out io.Writer, cli *cliSession, paymentID string) error {
	interactive := !trackPlain && outputFormat == outputText && isatty.IsTerminal(os.Stdout.Fd())

	var w *payment.Watch
	var err error
	if interactive {
		w, err = runTrackingView(ctx, cli, paymentID)
	} else {
		w, err = runPlainTracking(ctx, out, cli, paymentID)
	}
	if err != nil {
		return err
	}

	item, live, err := cli.svc.payments.Tracking(ctx, w.PaymentID())
	if err != nil {
		return err
	}
	resp := &types.PaymentTrackingResponse{Tracking: mapper.PaymentTrackingToProto(item, live)}
	return printResult(out, resp, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Tracking ended: %s after %d checks (last status %s)\n",
			item.Outcome, item.Polls, item.LastStatus)
		return err
	})
}

func runTrackingView(ctx context.Context, cli *cliSession, paymentID string) (*payment.Watch, error) {
	quietLogging(io.Discard)
	defer quietLogging(os.Stderr)

	feed := tui.NewFeed()
	defer feed.Close()

	w, err := cli.svc.payments.Track(ctx, paymentID, feed.Hooks())
	if err != nil {
		return nil, err
	}
	feed.Follow(w)

	_, runErr := tea.NewProgram(tui.NewModel(paymentID, feed, w.Stop), tea.WithContext(ctx)).Run()
	w.Stop()
	<-w.Done()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return nil, runErr
	}
	return w, nil
}

func runPlainTracking(ctx context.Context, out io.Writer, cli *cliSession, paymentID string) (*payment.Watch, error) {
	// Status lines go to stderr so stdout stays parseable with --output.
	logf := func(format string, args ...any) {
		_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
	if outputFormat == outputText {
		logf = func(format string, args ...any) {
			_, _ = fmt.Fprintf(out, format+"\n", args...)
		}
	}

	hooks := payment.Hooks{
		OnUpdate: func(p *entity.Payment) { logf("payment %s: %s", p.ID, p.Status) },
		OnPaid: func(_ context.Context, p *entity.Payment) {
			logf("payment %s: paid, plan upgraded", p.ID)
		},
		OnFailed: func(p *entity.Payment) { logf("payment %s: not completed (%s)", p.ID, p.Status) },
		OnTimeout: func(*entity.Payment) {
			logf("payment %s: still not confirmed, check again later", paymentID)
		},
	}

	w, err := cli.svc.payments.Track(ctx, paymentID, hooks)
	if err != nil {
		return nil, err
	}
	logf("watching payment %s", paymentID)

	select {
	case <-w.Done():
	case <-ctx.Done():
		w.Stop()
		<-w.Done()
	}
	return w, nil
}

func writePayment(w io.Writer, p *types.Payment) error {
	if p == nil {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Payment %s  %s  %s\n", p.Id, p.Status, formatCents(p.AmountCents))
	if p.PixCode != "" {
		fmt.Fprintf(&b, "PIX code: %s\n", p.PixCode)
	}
	if p.PaymentUrl != "" {
		fmt.Fprintf(&b, "Pay at:   %s\n", p.PaymentUrl)
	}
	if p.ExpiresAt != "" {
		fmt.Fprintf(&b, "Expires:  %s\n", p.ExpiresAt)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeLookupError(w io.Writer, resp *types.LookupErrorResponse) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Could not load the payment: %s\n", resp.Error)
	if resp.PaymentId != "" {
		fmt.Fprintf(&b, "Payment id: %s\n", resp.PaymentId)
	}
	fmt.Fprintln(&b, "Received parameters:")
	if len(resp.Params) == 0 {
		fmt.Fprintln(&b, "    (none)")
	}
	for key, value := range resp.Params {
		fmt.Fprintf(&b, "    %s = %s\n", key, value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
