package service

import (
	"context"
	"sync"
	"time"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/dto"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

type mockCollections struct {
	mu                  sync.Mutex
	listGoalsCalls      int
	listChallengesCalls int

	listGoalsFn       func(ctx context.Context) ([]*entity.Goal, error)
	createGoalFn      func(ctx context.Context, req *dto.CreateGoalRequest) (*entity.Goal, error)
	listChallengesFn  func(ctx context.Context) ([]*entity.Challenge, error)
	createChallengeFn func(ctx context.Context, req *dto.CreateChallengeRequest) (*entity.Challenge, error)
}

func (m *mockCollections) ListGoals(ctx context.Context) ([]*entity.Goal, error) {
	m.mu.Lock()
	m.listGoalsCalls++
	m.mu.Unlock()
	if m.listGoalsFn != nil {
		return m.listGoalsFn(ctx)
	}
	return nil, nil
}

func (m *mockCollections) CreateGoal(ctx context.Context, req *dto.CreateGoalRequest) (*entity.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(ctx, req)
	}
	return &entity.Goal{ID: "g-new", Title: req.Title, Status: entity.GoalStatusActive}, nil
}

func (m *mockCollections) ListChallenges(ctx context.Context) ([]*entity.Challenge, error) {
	m.mu.Lock()
	m.listChallengesCalls++
	m.mu.Unlock()
	if m.listChallengesFn != nil {
		return m.listChallengesFn(ctx)
	}
	return nil, nil
}

func (m *mockCollections) CreateChallenge(ctx context.Context, req *dto.CreateChallengeRequest) (*entity.Challenge, error) {
	if m.createChallengeFn != nil {
		return m.createChallengeFn(ctx, req)
	}
	return &entity.Challenge{ID: "c-new", Title: req.Title}, nil
}

func (m *mockCollections) goalListings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listGoalsCalls
}

type mockUsers struct {
	mu           sync.Mutex
	refreshCalls int

	currentUserFn func(ctx context.Context) (*entity.User, error)
	refreshFn     func(ctx context.Context) (*entity.User, error)
}

func (m *mockUsers) CurrentUser(ctx context.Context) (*entity.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx)
	}
	return &entity.User{ID: "u1", Plan: entity.PlanFree}, nil
}

func (m *mockUsers) Refresh(ctx context.Context) (*entity.User, error) {
	m.mu.Lock()
	m.refreshCalls++
	m.mu.Unlock()
	if m.refreshFn != nil {
		return m.refreshFn(ctx)
	}
	return m.CurrentUser(ctx)
}

func (m *mockUsers) refreshes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshCalls
}

func userOn(plan entity.PlanTier) *mockUsers {
	return &mockUsers{currentUserFn: func(ctx context.Context) (*entity.User, error) {
		return &entity.User{ID: "u1", Plan: plan}, nil
	}}
}

func activeGoals(n int) []*entity.Goal {
	goals := make([]*entity.Goal, 0, n+1)
	for i := 0; i < n; i++ {
		goals = append(goals, &entity.Goal{ID: "g", Status: entity.GoalStatusActive})
	}
	return append(goals, &entity.Goal{ID: "done", Status: "completed"})
}

type mockSubscriptionBackend struct {
	createFn func(ctx context.Context, req *dto.CreateSubscriptionRequest) (*entity.Payment, error)
	activeFn func(ctx context.Context) (*entity.Subscription, error)
	cancelFn func(ctx context.Context, subscriptionID string) error
	listFn   func(ctx context.Context) ([]*entity.Payment, error)
}

func (m *mockSubscriptionBackend) CreateSubscription(ctx context.Context, req *dto.CreateSubscriptionRequest) (*entity.Payment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &entity.Payment{ID: "p1", Status: entity.PaymentStatusPending}, nil
}

func (m *mockSubscriptionBackend) ActiveSubscription(ctx context.Context) (*entity.Subscription, error) {
	if m.activeFn != nil {
		return m.activeFn(ctx)
	}
	return nil, nil
}

func (m *mockSubscriptionBackend) CancelSubscription(ctx context.Context, subscriptionID string) error {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, subscriptionID)
	}
	return nil
}

func (m *mockSubscriptionBackend) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockPaymentBackend struct {
	getPaymentFn func(ctx context.Context, paymentID string) (*entity.Payment, error)
}

func (m *mockPaymentBackend) GetPayment(ctx context.Context, paymentID string) (*entity.Payment, error) {
	if m.getPaymentFn != nil {
		return m.getPaymentFn(ctx, paymentID)
	}
	return &entity.Payment{ID: paymentID, Status: entity.PaymentStatusPending}, nil
}

type mockTrackingRepo struct {
	mu      sync.Mutex
	created []*entity.PaymentTracking
	updated []entity.PaymentTracking
	updates chan entity.PaymentTracking

	findByPaymentIDFn func(ctx context.Context, paymentID string) (*entity.PaymentTracking, error)
	listUnresolvedFn  func(ctx context.Context, olderThan time.Time, limit int) ([]*entity.PaymentTracking, error)
}

func (m *mockTrackingRepo) Create(_ context.Context, item *entity.PaymentTracking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, item)
	return nil
}

func (m *mockTrackingRepo) Update(_ context.Context, item *entity.PaymentTracking) error {
	m.mu.Lock()
	m.updated = append(m.updated, *item)
	m.mu.Unlock()
	if m.updates != nil {
		m.updates <- *item
	}
	return nil
}

func (m *mockTrackingRepo) FindByPaymentID(ctx context.Context, paymentID string) (*entity.PaymentTracking, error) {
	if m.findByPaymentIDFn != nil {
		return m.findByPaymentIDFn(ctx, paymentID)
	}
	return nil, nil
}

func (m *mockTrackingRepo) ListUnresolved(ctx context.Context, olderThan time.Time, limit int) ([]*entity.PaymentTracking, error) {
	if m.listUnresolvedFn != nil {
		return m.listUnresolvedFn(ctx, olderThan, limit)
	}
	return nil, nil
}

type recordingInvalidator struct {
	mu    sync.Mutex
	users []string
}

func (r *recordingInvalidator) InvalidateUser(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, userID)
}

func (r *recordingInvalidator) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.users...)
}
