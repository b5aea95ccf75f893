package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entitlement"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/types"
)

var errLimitReached = errors.New("plan limit reached")

var (
	checkPlan  string
	checkCount int
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the plans with their limits and features",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp := &types.ListPlansResponse{Plans: mapper.PlansToProto(entitlement.Catalog())}
		return printResult(cmd.OutOrStdout(), resp, func(w io.Writer) error {
			for _, plan := range resp.Plans {
				challenges := fmt.Sprintf("%d challenges", plan.Limits.CreatedChallenges)
				if plan.Limits.CreatedChallenges == 0 {
					challenges = "no challenges"
				}
				if _, err := fmt.Fprintf(w, "%-8s  %s/month  %d active goals, %s\n",
					plan.Name, formatCents(plan.PriceCents), plan.Limits.ActiveGoals, challenges); err != nil {
					return err
				}
				for _, feature := range plan.Features {
					if _, err := fmt.Fprintf(w, "    - %s\n", feature); err != nil {
						return err
					}
				}
			}
			return nil
		})
	},
}

var checkCmd = &cobra.Command{
	Use:       "check goal|challenge",
	Short:     "Check whether another goal or challenge can be created",
	Long:      "Check a creation against the plan limits. With --plan the check runs on the given inputs, otherwise on the signed in user's usage.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"goal", "challenge"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := entitlement.KindGoals
		if args[0] == "challenge" {
			kind = entitlement.KindChallenges
		}

		var (
			plan  entity.PlanTier
			count int
		)
		if cmd.Flags().Changed("plan") {
			parsed, ok := entity.ParsePlanTier(checkPlan)
			if !ok {
				return errors.New("plan must be one of free, standard, plus")
			}
			if checkCount < 0 {
				return errors.New("count cannot be negative")
			}
			plan, count = parsed, checkCount
		} else {
			cli, err := newCLISession()
			if err != nil {
				return err
			}
			ctx, err := cli.authedContext(cmd.Context())
			if err != nil {
				return err
			}
			user, usage, err := cli.svc.entitlements.Usage(ctx)
			if err != nil {
				return err
			}
			plan = user.Plan
			if !plan.Valid() {
				plan = entity.PlanFree
			}
			count = usage.CountFor(kind)
		}

		decision := entitlement.Check(kind, plan, count)
		if decision.Allowed {
			resp := &types.DecisionResponse{
				Kind:     string(kind),
				Plan:     string(plan),
				Count:    int32(count),
				Decision: mapper.DecisionToProto(decision),
			}
			return printResult(cmd.OutOrStdout(), resp, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Allowed: %d of %d %s used on the %s plan\n",
					count, decision.Limit, kind, plan.DisplayName())
				return err
			})
		}

		prompt, _ := entitlement.LimitPrompt(kind, plan, count)
		if err := printResult(cmd.OutOrStdout(), mapper.LimitPromptToProto(prompt, false), func(w io.Writer) error {
			return writeLimitPrompt(w, prompt)
		}); err != nil {
			return err
		}
		return errLimitReached
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkPlan, "plan", "", "Evaluate for this plan instead of the signed in user")
	checkCmd.Flags().IntVar(&checkCount, "count", 0, "Current count used with --plan")
}

func writeLimitPrompt(w io.Writer, prompt entitlement.Prompt) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n", prompt.Title, prompt.Badge)
	fmt.Fprintf(&b, "%s\n", prompt.Decision.Message)
	if prompt.Suggestion.SuggestedPlan != nil {
		fmt.Fprintf(&b, "\nUpgrade to %s:\n", prompt.Suggestion.SuggestedPlan.DisplayName())
		for _, benefit := range prompt.Suggestion.Benefits {
			fmt.Fprintf(&b, "    - %s\n", benefit)
		}
		fmt.Fprintf(&b, "\nRun `inteliwallet-billing upgrade %s` to upgrade.\n", *prompt.Suggestion.SuggestedPlan)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
