package payment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

func TestRegistryKeepsOneLiveWatchPerPayment(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{entity.PaymentStatusPending}}
	registry := NewRegistry(NewTracker(fetcher, fastConfig(), testLogger()))
	defer registry.StopAll()

	first, started := registry.Start(context.Background(), "pay-1", "user-1", Hooks{})
	if !started {
		t.Fatal("expected first start to create a watch")
	}
	second, started := registry.Start(context.Background(), "pay-1", "user-1", Hooks{})
	if started || second != first {
		t.Fatal("expected the live watch to be reused")
	}
	if got, ok := registry.Get("pay-1"); !ok || got != first {
		t.Fatal("expected Get to return the live watch")
	}
}

func TestRegistryDoesNotRestartResolvedPayment(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{entity.PaymentStatusPaid}}
	cfg := fastConfig()
	cfg.SuccessDelay = 0
	registry := NewRegistry(NewTracker(fetcher, cfg, testLogger()))

	w, _ := registry.Start(context.Background(), "pay-2", "user-1", Hooks{})
	waitDone(t, w)

	again, started := registry.Start(context.Background(), "pay-2", "user-1", Hooks{})
	if started || again != w {
		t.Fatal("expected resolved watch to be returned without restarting")
	}
	time.Sleep(30 * time.Millisecond)
	if fetcher.Calls() != 1 {
		t.Fatalf("expected a single poll, got %d", fetcher.Calls())
	}
}

func TestRegistryRestartsStoppedWatch(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{entity.PaymentStatusPending}}
	registry := NewRegistry(NewTracker(fetcher, fastConfig(), testLogger()))
	defer registry.StopAll()

	w, _ := registry.Start(context.Background(), "pay-3", "user-1", Hooks{})
	if !registry.Stop("pay-3") {
		t.Fatal("expected live watch to be stopped")
	}
	if registry.Stop("pay-3") {
		t.Fatal("expected second stop to report no live watch")
	}
	if w.Result().Outcome != OutcomeStopped {
		t.Fatalf("expected stopped outcome, got %s", w.Result().Outcome)
	}

	next, started := registry.Start(context.Background(), "pay-3", "user-1", Hooks{})
	if !started || next == w {
		t.Fatal("expected a new watch after stop")
	}
}

func TestRegistryStopAll(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{entity.PaymentStatusPending}}
	registry := NewRegistry(NewTracker(fetcher, fastConfig(), testLogger()))

	a, _ := registry.Start(context.Background(), "a", "user-1", Hooks{})
	b, _ := registry.Start(context.Background(), "b", "user-1", Hooks{})
	registry.StopAll()

	for _, w := range []*Watch{a, b} {
		select {
		case <-w.Done():
		default:
			t.Fatalf("expected watch %s to be finished", w.PaymentID())
		}
	}
	calls := fetcher.Calls()
	time.Sleep(30 * time.Millisecond)
	if fetcher.Calls() != calls {
		t.Fatal("expected no polls after StopAll")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRegistryForgetsFinishedWatches(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{entity.PaymentStatusFailed}}
	registry := NewRegistry(NewTracker(fetcher, fastConfig(), testLogger()))
	registry.recentLimit = 10

	watches := make([]*Watch, 0, 200)
	for i := 0; i < 200; i++ {
		w, _ := registry.Start(context.Background(), fmt.Sprintf("pay-%d", i), "user-1", Hooks{})
		watches = append(watches, w)
	}
	for _, w := range watches {
		waitDone(t, w)
	}

	waitFor(t, func() bool {
		registry.mu.Lock()
		defer registry.mu.Unlock()
		return len(registry.watches) == 0
	})

	registry.mu.Lock()
	recent, order := len(registry.recent), len(registry.recentOrder)
	registry.mu.Unlock()
	if recent > 10 || order > 10 {
		t.Fatalf("expected at most 10 remembered watches, got %d (order %d)", recent, order)
	}
	if registry.Live() != 0 {
		t.Fatalf("expected no live watches, got %d", registry.Live())
	}
	if _, ok := registry.Get("pay-199"); !ok {
		t.Fatal("expected the newest finished watch to stay readable")
	}
	if _, ok := registry.Get("pay-0"); ok {
		t.Fatal("expected the oldest finished watch to be evicted")
	}
}

func TestRegistryRemembersResolvedPaymentAfterReap(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{entity.PaymentStatusFailed}}
	registry := NewRegistry(NewTracker(fetcher, fastConfig(), testLogger()))

	w, _ := registry.Start(context.Background(), "pay-9", "user-1", Hooks{})
	waitDone(t, w)
	waitFor(t, func() bool {
		registry.mu.Lock()
		defer registry.mu.Unlock()
		_, live := registry.watches["pay-9"]
		return !live
	})

	again, started := registry.Start(context.Background(), "pay-9", "user-2", Hooks{})
	if started || again != w {
		t.Fatal("expected the failed payment not to be watched again")
	}
	if owner, ok := registry.Owner("pay-9"); !ok || owner != "user-1" {
		t.Fatalf("expected owner user-1, got %q", owner)
	}
}
