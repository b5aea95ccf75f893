package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/dto"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

const (
	// PaymentIDPlaceholder is substituted by the backend in redirect URLs.
	PaymentIDPlaceholder = "{paymentId}"

	paymentMethodPIX = "PIX"
)

type selectPlanRequest interface {
	GetPlan() string
}

type subscriptionBackend interface {
	CreateSubscription(ctx context.Context, req *dto.CreateSubscriptionRequest) (*entity.Payment, error)
	ActiveSubscription(ctx context.Context) (*entity.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	ListPayments(ctx context.Context) ([]*entity.Payment, error)
}

type SubscriptionService struct {
	backend       subscriptionBackend
	users         userProvider
	publicBaseURL string
	logger        logrus.FieldLogger
}

func NewSubscriptionService(backend subscriptionBackend, users userProvider, publicBaseURL string) *SubscriptionService {
	return &SubscriptionService{
		backend:       backend,
		users:         users,
		publicBaseURL: publicBaseURL,
		logger:        logrus.WithField("module", "subscription-service"),
	}
}

// ReturnURL is where the payment provider sends the user after paying.
func (s *SubscriptionService) ReturnURL() string {
	return s.publicBaseURL + "/payment/success?paymentId=" + PaymentIDPlaceholder
}

func (s *SubscriptionService) CompletionURL() string {
	return s.publicBaseURL + "/payment/complete?paymentId=" + PaymentIDPlaceholder
}

// SelectPlan starts a PIX payment for an upgrade to the requested tier.
func (s *SubscriptionService) SelectPlan(ctx context.Context, req selectPlanRequest) (*entity.Payment, error) {
	tier, ok := entity.ParsePlanTier(req.GetPlan())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlan, req.GetPlan())
	}
	if tier == entity.PlanFree {
		return nil, ErrFreePlan
	}

	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if planOf(user) == tier {
		return nil, ErrAlreadyOnPlan
	}

	p, err := s.backend.CreateSubscription(ctx, &dto.CreateSubscriptionRequest{
		Plan:          tier.BackendCode(),
		PaymentMethod: paymentMethodPIX,
		ReturnURL:     s.ReturnURL(),
		CompletionURL: s.CompletionURL(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"plan":       tier,
		"payment_id": p.ID,
	}).Info("subscription_payment_created")
	return p, nil
}

// ActiveSubscription returns nil when the user has no active subscription.
func (s *SubscriptionService) ActiveSubscription(ctx context.Context) (*entity.Subscription, error) {
	return s.backend.ActiveSubscription(ctx)
}

func (s *SubscriptionService) Cancel(ctx context.Context, subscriptionID string) error {
	if subscriptionID == "" {
		return fmt.Errorf("%w: subscription id is required", ErrInvalidRequest)
	}
	if err := s.backend.CancelSubscription(ctx, subscriptionID); err != nil {
		return err
	}
	if _, err := s.users.Refresh(ctx); err != nil {
		s.logger.WithError(err).Warn("profile_refresh_failed")
	}
	return nil
}

func (s *SubscriptionService) PaymentHistory(ctx context.Context) ([]*entity.Payment, error) {
	return s.backend.ListPayments(ctx)
}
