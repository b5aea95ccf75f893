package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/payment"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/config"
)

func fastRegistry(fetcher payment.Fetcher) *payment.Registry {
	return payment.NewRegistry(payment.NewTracker(fetcher, payment.Config{
		PollInterval: 10 * time.Millisecond,
		MaxDuration:  time.Second,
		SuccessDelay: 10 * time.Millisecond,
	}, nil))
}

func jobsConfig() config.JobsConfig {
	return config.JobsConfig{ReconcileInterval: time.Minute, ReconcileBatchSize: 10}
}

func TestResolvePaymentIDPriority(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"paymentId=a&payment_id=b&id=c", "a"},
		{"payment_id=b&id=c&transactionId=d", "b"},
		{"id=c&transactionId=d", "c"},
		{"transactionId=d&transaction_id=e", "d"},
		{"transaction_id=e", "e"},
		{"paymentId=&id=%20c%20", "c"},
		{"foo=bar", ""},
	}
	for _, tc := range tests {
		params, err := url.ParseQuery(tc.query)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.query, err)
		}
		if got := ResolvePaymentID(params); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.query, tc.want, got)
		}
	}
}

func TestCompleteMissingIDReturnsLookupError(t *testing.T) {
	svc := NewPaymentService(&mockPaymentBackend{}, userOn(entity.PlanFree), fastRegistry(&mockPaymentBackend{}), nil, nil, jobsConfig())

	_, err := svc.Complete(context.Background(), url.Values{"status": {"ok"}})
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) || !errors.Is(err, ErrPaymentIDMissing) {
		t.Fatalf("expected missing id lookup error, got %v", err)
	}
	if lookupErr.Params["status"] != "ok" {
		t.Fatalf("expected received params in the error, got %v", lookupErr.Params)
	}
}

func TestCompleteUnknownPaymentReturnsLookupError(t *testing.T) {
	backendMock := &mockPaymentBackend{getPaymentFn: func(ctx context.Context, paymentID string) (*entity.Payment, error) {
		return nil, &backend.APIError{StatusCode: http.StatusNotFound, Message: "Payment not found"}
	}}
	svc := NewPaymentService(backendMock, userOn(entity.PlanFree), fastRegistry(backendMock), nil, nil, jobsConfig())

	_, err := svc.Complete(context.Background(), url.Values{"payment_id": {"p-404"}})
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) || !errors.Is(err, ErrPaymentNotFound) || lookupErr.PaymentID != "p-404" {
		t.Fatalf("expected not found lookup error, got %v", err)
	}
}

func TestCompletePaidRefreshesAndInvalidates(t *testing.T) {
	backendMock := &mockPaymentBackend{getPaymentFn: func(ctx context.Context, paymentID string) (*entity.Payment, error) {
		return &entity.Payment{ID: paymentID, Status: entity.PaymentStatusPaid}, nil
	}}
	users := userOn(entity.PlanStandard)
	invalidator := &recordingInvalidator{}
	svc := NewPaymentService(backendMock, users, fastRegistry(backendMock), nil, invalidator, jobsConfig())

	completion, err := svc.Complete(context.Background(), url.Values{"paymentId": {"p1"}})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completion.User == nil || completion.User.Plan != entity.PlanStandard {
		t.Fatalf("expected refreshed user, got %+v", completion.User)
	}
	if users.refreshes() != 1 || len(invalidator.calls()) != 1 {
		t.Fatalf("expected one refresh and one invalidation, got %d / %v", users.refreshes(), invalidator.calls())
	}
}

func TestCompletePendingDoesNotRefresh(t *testing.T) {
	users := userOn(entity.PlanFree)
	svc := NewPaymentService(&mockPaymentBackend{}, users, fastRegistry(&mockPaymentBackend{}), nil, nil, jobsConfig())

	completion, err := svc.Complete(context.Background(), url.Values{"id": {"p1"}})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completion.Payment.Status != entity.PaymentStatusPending || completion.User != nil || users.refreshes() != 0 {
		t.Fatalf("unexpected completion: %+v", completion)
	}
}

func TestTrackPersistsOutcomeAndRunsSuccessEffects(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	backendMock := &mockPaymentBackend{getPaymentFn: func(ctx context.Context, paymentID string) (*entity.Payment, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < 2 {
			return &entity.Payment{ID: paymentID, Status: entity.PaymentStatusPending}, nil
		}
		return &entity.Payment{ID: paymentID, Status: entity.PaymentStatusPaid}, nil
	}}
	repo := &mockTrackingRepo{updates: make(chan entity.PaymentTracking, 4)}
	users := userOn(entity.PlanFree)
	invalidator := &recordingInvalidator{}
	svc := NewPaymentService(backendMock, users, fastRegistry(backendMock), repo, invalidator, jobsConfig())

	paid := make(chan struct{})
	w, err := svc.Track(context.Background(), "p1", payment.Hooks{
		OnPaid: func(ctx context.Context, p *entity.Payment) { close(paid) },
	})
	if err != nil {
		t.Fatalf("track: %v", err)
	}

	select {
	case <-paid:
	case <-time.After(2 * time.Second):
		t.Fatal("caller hook was not invoked")
	}
	<-w.Done()

	select {
	case record := <-repo.updates:
		if record.Outcome != entity.TrackingOutcomePaid || record.LastStatus != entity.PaymentStatusPaid || record.Polls != 2 {
			t.Fatalf("unexpected final record: %+v", record)
		}
		if record.FinishedAt == nil {
			t.Fatal("expected finished_at")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("final outcome was not persisted")
	}

	repo.mu.Lock()
	created := len(repo.created)
	repo.mu.Unlock()
	if created != 1 {
		t.Fatalf("expected one record created, got %d", created)
	}
	if users.refreshes() != 1 {
		t.Fatalf("expected profile refresh on paid, got %d", users.refreshes())
	}
	if got := invalidator.calls(); len(got) != 1 || got[0] != "u1" {
		t.Fatalf("expected u1 invalidated, got %v", got)
	}
}

func TestTrackJoinsLiveWatch(t *testing.T) {
	repo := &mockTrackingRepo{}
	svc := NewPaymentService(&mockPaymentBackend{}, userOn(entity.PlanFree), fastRegistry(&mockPaymentBackend{}), repo, nil, jobsConfig())
	defer svc.StopAll()

	first, err := svc.Track(context.Background(), "p1", payment.Hooks{})
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	second, err := svc.Track(context.Background(), "p1", payment.Hooks{})
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if first != second {
		t.Fatal("expected the live watch to be reused")
	}

	tracking, live, err := svc.Tracking(context.Background(), "p1")
	if err != nil {
		t.Fatalf("tracking: %v", err)
	}
	if !live || tracking.Outcome != entity.TrackingOutcomeWatching {
		t.Fatalf("expected live watching record, got %+v live=%v", tracking, live)
	}
}

func TestTrackRequiresUser(t *testing.T) {
	users := &mockUsers{currentUserFn: func(ctx context.Context) (*entity.User, error) {
		return nil, backend.ErrNoToken
	}}
	svc := NewPaymentService(&mockPaymentBackend{}, users, fastRegistry(&mockPaymentBackend{}), nil, nil, jobsConfig())

	if _, err := svc.Track(context.Background(), "p1", payment.Hooks{}); !errors.Is(err, backend.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if _, err := svc.Track(context.Background(), " ", payment.Hooks{}); !errors.Is(err, ErrPaymentIDMissing) {
		t.Fatalf("expected ErrPaymentIDMissing, got %v", err)
	}
}

func TestStopTracking(t *testing.T) {
	svc := NewPaymentService(&mockPaymentBackend{}, userOn(entity.PlanFree), fastRegistry(&mockPaymentBackend{}), nil, nil, jobsConfig())

	if err := svc.StopTracking(context.Background(), "unknown"); !errors.Is(err, ErrTrackingNotFound) {
		t.Fatalf("expected ErrTrackingNotFound, got %v", err)
	}

	w, err := svc.Track(context.Background(), "p1", payment.Hooks{})
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if err := svc.StopTracking(context.Background(), "p1"); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if w.Result().Outcome != payment.OutcomeStopped {
		t.Fatalf("expected stopped outcome, got %s", w.Result().Outcome)
	}

	tracking, live, err := svc.Tracking(context.Background(), "p1")
	if err != nil || live || tracking.Outcome != string(payment.OutcomeStopped) {
		t.Fatalf("unexpected tracking after stop: %+v live=%v err=%v", tracking, live, err)
	}
}

type userKey struct{}

// usersFromContext resolves the caller from a context value, so one service
// can serve several users.
func usersFromContext() *mockUsers {
	return &mockUsers{currentUserFn: func(ctx context.Context) (*entity.User, error) {
		id, _ := ctx.Value(userKey{}).(string)
		if id == "" {
			return nil, backend.ErrNoToken
		}
		return &entity.User{ID: id, Plan: entity.PlanFree}, nil
	}}
}

func TestTrackingScopedToOwner(t *testing.T) {
	svc := NewPaymentService(&mockPaymentBackend{}, usersFromContext(), fastRegistry(&mockPaymentBackend{}), nil, nil, jobsConfig())
	defer svc.StopAll()

	owner := context.WithValue(context.Background(), userKey{}, "u1")
	stranger := context.WithValue(context.Background(), userKey{}, "u2")

	if _, err := svc.Track(owner, "p1", payment.Hooks{}); err != nil {
		t.Fatalf("track: %v", err)
	}

	if _, _, err := svc.OwnTracking(stranger, "p1"); !errors.Is(err, ErrTrackingNotFound) {
		t.Fatalf("expected ErrTrackingNotFound reading a foreign watch, got %v", err)
	}
	if err := svc.StopTracking(stranger, "p1"); !errors.Is(err, ErrTrackingNotFound) {
		t.Fatalf("expected ErrTrackingNotFound stopping a foreign watch, got %v", err)
	}
	if _, err := svc.Track(stranger, "p1", payment.Hooks{}); !errors.Is(err, ErrTrackingNotFound) {
		t.Fatalf("expected ErrTrackingNotFound joining a foreign watch, got %v", err)
	}
	if err := svc.StopTracking(context.Background(), "p1"); !errors.Is(err, backend.ErrNoToken) {
		t.Fatalf("expected ErrNoToken without a caller, got %v", err)
	}

	tracking, live, err := svc.OwnTracking(owner, "p1")
	if err != nil {
		t.Fatalf("own tracking: %v", err)
	}
	if !live || tracking.UserID == nil || *tracking.UserID != "u1" {
		t.Fatalf("expected the owner's live watch, got %+v live=%v", tracking, live)
	}
	if err := svc.StopTracking(owner, "p1"); err != nil {
		t.Fatalf("owner stop: %v", err)
	}

	tracking, live, err = svc.Tracking(context.Background(), "p1")
	if err != nil || live || tracking.Outcome != string(payment.OutcomeStopped) {
		t.Fatalf("expected the internal read to see the stopped watch, got %+v live=%v err=%v", tracking, live, err)
	}
}

func TestRunReconcileBatch(t *testing.T) {
	backendMock := &mockPaymentBackend{getPaymentFn: func(ctx context.Context, paymentID string) (*entity.Payment, error) {
		switch paymentID {
		case "paid":
			return &entity.Payment{ID: paymentID, Status: entity.PaymentStatusPaid}, nil
		case "expired":
			return &entity.Payment{ID: paymentID, Status: entity.PaymentStatusExpired}, nil
		case "pending":
			return &entity.Payment{ID: paymentID, Status: entity.PaymentStatusPending}, nil
		default:
			return nil, errors.New("connection refused")
		}
	}}
	var gotLimit int
	repo := &mockTrackingRepo{listUnresolvedFn: func(ctx context.Context, olderThan time.Time, limit int) ([]*entity.PaymentTracking, error) {
		gotLimit = limit
		return []*entity.PaymentTracking{
			{ID: "t1", PaymentID: "paid", Outcome: entity.TrackingOutcomeTimedOut},
			{ID: "t2", PaymentID: "expired", Outcome: entity.TrackingOutcomeStopped},
			{ID: "t3", PaymentID: "pending", Outcome: entity.TrackingOutcomeTimedOut},
			{ID: "t4", PaymentID: "broken", Outcome: entity.TrackingOutcomeWatching},
		}, nil
	}}
	svc := NewPaymentService(backendMock, userOn(entity.PlanFree), fastRegistry(backendMock), repo, nil, jobsConfig())

	if err := svc.RunReconcileBatch(context.Background()); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if gotLimit != 10 {
		t.Fatalf("expected batch size 10, got %d", gotLimit)
	}

	outcomes := make(map[string]string)
	for _, item := range repo.updated {
		outcomes[item.PaymentID] = item.Outcome
	}
	want := map[string]string{
		"paid":    entity.TrackingOutcomePaid,
		"expired": entity.TrackingOutcomeFailed,
		"pending": entity.TrackingOutcomeUnresolved,
	}
	if len(outcomes) != len(want) {
		t.Fatalf("unexpected updates: %v", outcomes)
	}
	for id, outcome := range want {
		if outcomes[id] != outcome {
			t.Fatalf("%s: expected %s, got %s", id, outcome, outcomes[id])
		}
	}
}

func TestRunReconcileBatchRequiresStorage(t *testing.T) {
	svc := NewPaymentService(&mockPaymentBackend{}, userOn(entity.PlanFree), fastRegistry(&mockPaymentBackend{}), nil, nil, jobsConfig())

	if err := svc.RunReconcileBatch(context.Background()); !errors.Is(err, ErrTrackingNotEnabled) {
		t.Fatalf("expected ErrTrackingNotEnabled, got %v", err)
	}
}
