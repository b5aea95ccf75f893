package payment

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

type scriptedFetcher struct {
	mu       sync.Mutex
	statuses []entity.PaymentStatus
	errs     []error
	calls    int
}

func (f *scriptedFetcher) GetPayment(_ context.Context, paymentID string) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	f.calls++
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	status := f.statuses[len(f.statuses)-1]
	if idx < len(f.statuses) {
		status = f.statuses[idx]
	}
	return &entity.Payment{ID: paymentID, Status: status}, nil
}

func (f *scriptedFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fastConfig() Config {
	return Config{
		PollInterval: 10 * time.Millisecond,
		MaxDuration:  time.Second,
		SuccessDelay: 20 * time.Millisecond,
	}
}

func waitDone(t *testing.T, w *Watch) Result {
	t.Helper()
	select {
	case <-w.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not finish")
	}
	return w.Result()
}

func TestWatchPendingThenPaid(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{
		entity.PaymentStatusPending,
		entity.PaymentStatusPending,
		entity.PaymentStatusPaid,
	}}
	tracker := NewTracker(fetcher, fastConfig(), testLogger())

	var updates, paid, failed atomic.Int32
	dismissed := make(chan struct{})
	w := tracker.Watch(context.Background(), "pay-1", Hooks{
		OnUpdate: func(p *entity.Payment) { updates.Add(1) },
		OnPaid:   func(_ context.Context, p *entity.Payment) { paid.Add(1) },
		OnFailed: func(p *entity.Payment) { failed.Add(1) },
		OnDismiss: func() {
			close(dismissed)
		},
	})

	res := waitDone(t, w)
	if res.Outcome != OutcomePaid {
		t.Fatalf("expected paid outcome, got %s", res.Outcome)
	}
	if res.Polls != 3 || fetcher.Calls() != 3 {
		t.Fatalf("expected 3 polls, got result=%d fetcher=%d", res.Polls, fetcher.Calls())
	}
	if paid.Load() != 1 || updates.Load() != 2 || failed.Load() != 0 {
		t.Fatalf("unexpected hook counts: paid=%d updates=%d failed=%d", paid.Load(), updates.Load(), failed.Load())
	}
	select {
	case <-dismissed:
	default:
		t.Fatal("expected dismiss to run before the watch finished")
	}

	time.Sleep(50 * time.Millisecond)
	if fetcher.Calls() != 3 {
		t.Fatalf("expected no polls after paid, got %d", fetcher.Calls())
	}
}

func TestWatchAlwaysPendingStopsAtCeiling(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{entity.PaymentStatusPending}}
	cfg := fastConfig()
	cfg.MaxDuration = 55 * time.Millisecond
	tracker := NewTracker(fetcher, cfg, testLogger())

	var timeouts atomic.Int32
	var lastSeen atomic.Pointer[entity.Payment]
	w := tracker.Watch(context.Background(), "pay-2", Hooks{
		OnTimeout: func(last *entity.Payment) {
			timeouts.Add(1)
			lastSeen.Store(last)
		},
	})

	res := waitDone(t, w)
	if res.Outcome != OutcomeTimedOut {
		t.Fatalf("expected timed_out outcome, got %s", res.Outcome)
	}
	if timeouts.Load() != 1 {
		t.Fatalf("expected one timeout, got %d", timeouts.Load())
	}
	if last := lastSeen.Load(); last == nil || last.Status != entity.PaymentStatusPending {
		t.Fatalf("expected last pending payment, got %+v", last)
	}
	if res.FinishedAt.Sub(res.StartedAt) < cfg.MaxDuration {
		t.Fatalf("expected watch to last the full ceiling, got %v", res.FinishedAt.Sub(res.StartedAt))
	}
	if fetcher.Calls() > 5 {
		t.Fatalf("expected at most 5 polls within the ceiling, got %d", fetcher.Calls())
	}

	calls := fetcher.Calls()
	time.Sleep(50 * time.Millisecond)
	if fetcher.Calls() != calls {
		t.Fatalf("expected no polls after the ceiling, got %d then %d", calls, fetcher.Calls())
	}
}

func TestWatchFailedStopsPolling(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{
		entity.PaymentStatusProcessing,
		entity.PaymentStatusFailed,
	}}
	tracker := NewTracker(fetcher, fastConfig(), testLogger())

	var failed, paid atomic.Int32
	w := tracker.Watch(context.Background(), "pay-3", Hooks{
		OnPaid:   func(_ context.Context, p *entity.Payment) { paid.Add(1) },
		OnFailed: func(p *entity.Payment) { failed.Add(1) },
	})

	res := waitDone(t, w)
	if res.Outcome != OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", res.Outcome)
	}
	if failed.Load() != 1 || paid.Load() != 0 {
		t.Fatalf("unexpected hook counts: failed=%d paid=%d", failed.Load(), paid.Load())
	}
	time.Sleep(40 * time.Millisecond)
	if fetcher.Calls() != 2 {
		t.Fatalf("expected 2 polls, got %d", fetcher.Calls())
	}
}

func TestWatchTreatsExpiredAndRefundedAsFailure(t *testing.T) {
	for _, status := range []entity.PaymentStatus{
		entity.PaymentStatusExpired,
		entity.PaymentStatusCanceled,
		entity.PaymentStatusRefunded,
	} {
		fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{status}}
		w := NewTracker(fetcher, fastConfig(), testLogger()).Watch(context.Background(), "pay", Hooks{})
		if res := waitDone(t, w); res.Outcome != OutcomeFailed {
			t.Fatalf("expected failed outcome for %s, got %s", status, res.Outcome)
		}
	}
}

func TestWatchContinuesAfterFetchError(t *testing.T) {
	fetcher := &scriptedFetcher{
		statuses: []entity.PaymentStatus{entity.PaymentStatusPending, entity.PaymentStatusPaid},
		errs:     []error{errors.New("connection reset")},
	}
	tracker := NewTracker(fetcher, fastConfig(), testLogger())

	w := tracker.Watch(context.Background(), "pay-4", Hooks{})
	res := waitDone(t, w)
	if res.Outcome != OutcomePaid {
		t.Fatalf("expected paid outcome, got %s", res.Outcome)
	}
	if res.Polls != 1 || fetcher.Calls() != 2 {
		t.Fatalf("expected one successful poll after one error, got polls=%d calls=%d", res.Polls, fetcher.Calls())
	}
}

func TestWatchStopDuringPollCancelsRequest(t *testing.T) {
	started := make(chan struct{})
	var calls atomic.Int32
	fetcher := FetcherFunc(func(ctx context.Context, paymentID string) (*entity.Payment, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-ctx.Done()
		return nil, ctx.Err()
	})
	tracker := NewTracker(fetcher, fastConfig(), testLogger())

	var hooks atomic.Int32
	w := tracker.Watch(context.Background(), "pay-5", Hooks{
		OnUpdate:  func(p *entity.Payment) { hooks.Add(1) },
		OnFailed:  func(p *entity.Payment) { hooks.Add(1) },
		OnTimeout: func(p *entity.Payment) { hooks.Add(1) },
	})

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("poll never started")
	}
	w.Stop()

	if res := w.Result(); res.Outcome != OutcomeStopped {
		t.Fatalf("expected stopped outcome, got %s", res.Outcome)
	}
	time.Sleep(40 * time.Millisecond)
	if calls.Load() != 1 {
		t.Fatalf("expected no polls after stop, got %d", calls.Load())
	}
	if hooks.Load() != 0 {
		t.Fatalf("expected no hooks after stop, got %d", hooks.Load())
	}
}

func TestWatchStopDuringSuccessDelaySkipsDismiss(t *testing.T) {
	fetcher := &scriptedFetcher{statuses: []entity.PaymentStatus{entity.PaymentStatusPaid}}
	cfg := fastConfig()
	cfg.SuccessDelay = time.Hour
	tracker := NewTracker(fetcher, cfg, testLogger())

	paid := make(chan struct{})
	var dismissed atomic.Int32
	w := tracker.Watch(context.Background(), "pay-6", Hooks{
		OnPaid:    func(_ context.Context, p *entity.Payment) { close(paid) },
		OnDismiss: func() { dismissed.Add(1) },
	})

	select {
	case <-paid:
	case <-time.After(time.Second):
		t.Fatal("payment never reported paid")
	}
	w.Stop()
	if dismissed.Load() != 0 {
		t.Fatalf("expected dismiss to be skipped, got %d", dismissed.Load())
	}
	if res := w.Result(); res.Outcome != OutcomePaid {
		t.Fatalf("expected paid outcome, got %s", res.Outcome)
	}
}

func TestNewTrackerAppliesDefaults(t *testing.T) {
	tracker := NewTracker(&scriptedFetcher{}, Config{}, nil)
	if tracker.Config() != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", tracker.Config())
	}
}
