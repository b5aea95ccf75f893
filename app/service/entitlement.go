package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/cache"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/dto"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entitlement"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

type createGoalRequest interface {
	GetTitle() string
	GetTargetAmount() float64
	GetCurrentAmount() float64
	GetCategory() string
	GetDeadline() string
}

type createChallengeRequest interface {
	GetTitle() string
	GetDescription() string
	GetTargetAmount() float64
	GetCategory() string
	GetDeadline() string
	GetMaxParticipants() int32
	GetRewardPoints() int32
}

type collectionsBackend interface {
	ListGoals(ctx context.Context) ([]*entity.Goal, error)
	CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*entity.Goal, error)
	ListChallenges(ctx context.Context) ([]*entity.Challenge, error)
	CreateChallenge(ctx context.Context, req *dto.CreateChallengeRequest) (*entity.Challenge, error)
}

type userProvider interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
	Refresh(ctx context.Context) (*entity.User, error)
}

// EntitlementSummary is the user's plan standing across both limited resources.
type EntitlementSummary struct {
	User       *entity.User
	Plan       entity.PlanTier
	Usage      entitlement.Usage
	Goals      entitlement.Decision
	Challenges entitlement.Decision
	Suggestion entitlement.UpgradeSuggestion
}

type EntitlementService struct {
	backend collectionsBackend
	users   userProvider
	cache   *cache.Cache
	logger  logrus.FieldLogger
}

func NewEntitlementService(backend collectionsBackend, users userProvider, queryCache *cache.Cache) *EntitlementService {
	if queryCache == nil {
		queryCache = cache.New()
	}
	return &EntitlementService{
		backend: backend,
		users:   users,
		cache:   queryCache,
		logger:  logrus.WithField("module", "entitlement-service"),
	}
}

// Usage counts the user's active goals and created challenges.
func (s *EntitlementService) Usage(ctx context.Context) (*entity.User, entitlement.Usage, error) {
	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return nil, entitlement.Usage{}, err
	}

	goals, err := cache.Fetch(ctx, s.cache, cache.GoalsKey(user.ID), cache.GoalsStaleTime, s.backend.ListGoals)
	if err != nil {
		return nil, entitlement.Usage{}, fmt.Errorf("listing goals: %w", err)
	}
	challenges, err := cache.Fetch(ctx, s.cache, cache.ChallengesKey(user.ID), cache.DefaultStaleTime, s.backend.ListChallenges)
	if err != nil {
		return nil, entitlement.Usage{}, fmt.Errorf("listing challenges: %w", err)
	}

	return user, entitlement.Usage{
		ActiveGoals:       entitlement.CountActiveGoals(goals),
		CreatedChallenges: entitlement.CountCreatedChallenges(challenges, user.ID),
	}, nil
}

func (s *EntitlementService) Summary(ctx context.Context) (*EntitlementSummary, error) {
	user, usage, err := s.Usage(ctx)
	if err != nil {
		return nil, err
	}
	plan := planOf(user)
	return &EntitlementSummary{
		User:       user,
		Plan:       plan,
		Usage:      usage,
		Goals:      entitlement.CanCreateGoal(plan, usage.ActiveGoals),
		Challenges: entitlement.CanCreateChallenge(plan, usage.CreatedChallenges),
		Suggestion: entitlement.GetUpgradeSuggestion(plan),
	}, nil
}

// CheckGoal returns a *LimitError when the plan does not allow another goal.
func (s *EntitlementService) CheckGoal(ctx context.Context) error {
	_, err := s.check(ctx, entitlement.KindGoals)
	return err
}

// CheckChallenge returns a *LimitError when the plan does not allow another challenge.
func (s *EntitlementService) CheckChallenge(ctx context.Context) error {
	_, err := s.check(ctx, entitlement.KindChallenges)
	return err
}

func (s *EntitlementService) check(ctx context.Context, kind entitlement.Kind) (*entity.User, error) {
	user, usage, err := s.Usage(ctx)
	if err != nil {
		return nil, err
	}
	plan := planOf(user)
	count := usage.CountFor(kind)
	if entitlement.Check(kind, plan, count).Allowed {
		return user, nil
	}
	prompt, _ := entitlement.LimitPrompt(kind, plan, count)
	return user, &LimitError{Prompt: prompt}
}

func (s *EntitlementService) CreateGoal(ctx context.Context, req createGoalRequest) (*entity.Goal, error) {
	if strings.TrimSpace(req.GetTitle()) == "" || req.GetTargetAmount() <= 0 {
		return nil, fmt.Errorf("%w: title and a positive target amount are required", ErrInvalidRequest)
	}
	user, err := s.check(ctx, entitlement.KindGoals)
	if err != nil {
		return nil, err
	}

	goal, err := s.backend.CreateGoal(ctx, &dto.CreateGoalRequest{
		Title:         strings.TrimSpace(req.GetTitle()),
		TargetAmount:  req.GetTargetAmount(),
		CurrentAmount: req.GetCurrentAmount(),
		Category:      req.GetCategory(),
		Deadline:      req.GetDeadline(),
	})
	if err != nil {
		return nil, s.creationError(ctx, user, entitlement.KindGoals, err)
	}

	s.cache.Invalidate(cache.GoalsPrefix(user.ID))
	return goal, nil
}

func (s *EntitlementService) CreateChallenge(ctx context.Context, req createChallengeRequest) (*entity.Challenge, error) {
	if strings.TrimSpace(req.GetTitle()) == "" || req.GetTargetAmount() <= 0 {
		return nil, fmt.Errorf("%w: title and a positive target amount are required", ErrInvalidRequest)
	}
	if req.GetMaxParticipants() < 0 || req.GetRewardPoints() < 0 {
		return nil, fmt.Errorf("%w: participants and reward points cannot be negative", ErrInvalidRequest)
	}
	user, err := s.check(ctx, entitlement.KindChallenges)
	if err != nil {
		return nil, err
	}

	challenge, err := s.backend.CreateChallenge(ctx, &dto.CreateChallengeRequest{
		Title:           strings.TrimSpace(req.GetTitle()),
		Description:     req.GetDescription(),
		TargetAmount:    req.GetTargetAmount(),
		Category:        req.GetCategory(),
		Deadline:        req.GetDeadline(),
		MaxParticipants: req.GetMaxParticipants(),
		RewardPoints:    req.GetRewardPoints(),
	})
	if err != nil {
		return nil, s.creationError(ctx, user, entitlement.KindChallenges, err)
	}

	s.cache.Invalidate(cache.ChallengesPrefix(user.ID))
	return challenge, nil
}

// creationError turns a backend limit rejection into the same LimitError the
// local check produces, with usage recomputed from fresh collections.
func (s *EntitlementService) creationError(ctx context.Context, user *entity.User, kind entitlement.Kind, err error) error {
	violated, ok := backend.LimitViolation(err)
	if !ok {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusForbidden || apiErr.StatusCode == http.StatusUnprocessableEntity) {
			// A limit rejection without a known code surfaces as a plain failure.
			s.logger.WithError(err).WithFields(logrus.Fields{
				"kind":   kind,
				"status": apiErr.StatusCode,
				"code":   apiErr.Code,
			}).Warn("create_rejected_without_limit_code")
		}
		return err
	}

	s.InvalidateUser(user.ID)
	plan := planOf(user)
	refreshed, usage, usageErr := s.Usage(ctx)
	if usageErr != nil {
		s.logger.WithError(usageErr).Warn("usage_recount_failed")
	} else {
		plan = planOf(refreshed)
	}

	// The API is authoritative: report the count as at the limit even when
	// the local collections lag behind.
	count := usage.CountFor(violated)
	if limit := entitlement.Check(violated, plan, 0).Limit; count < limit {
		count = limit
	}
	prompt, _ := entitlement.LimitPrompt(violated, plan, count)
	if violated != kind {
		s.logger.WithFields(logrus.Fields{"requested": kind, "violated": violated}).Warn("limit_kind_mismatch")
	}
	return &LimitError{Prompt: prompt, FromBackend: true}
}

// InvalidateUser drops every cached collection of userID.
func (s *EntitlementService) InvalidateUser(userID string) {
	s.cache.Invalidate(cache.GoalsPrefix(userID), cache.ChallengesPrefix(userID))
}

func planOf(user *entity.User) entity.PlanTier {
	if user == nil || !user.Plan.Valid() {
		return entity.PlanFree
	}
	return user.Plan
}
