// Package payment watches a single payment until it resolves, fails or the
// polling ceiling is reached.
package payment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

type Outcome string

const (
	OutcomePaid     Outcome = "paid"
	OutcomeFailed   Outcome = "failed"
	OutcomeTimedOut Outcome = "timed_out"
	OutcomeStopped  Outcome = "stopped"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxDuration  = 300 * time.Second
	DefaultSuccessDelay = 2 * time.Second
)

type Config struct {
	PollInterval time.Duration
	MaxDuration  time.Duration
	SuccessDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		PollInterval: DefaultPollInterval,
		MaxDuration:  DefaultMaxDuration,
		SuccessDelay: DefaultSuccessDelay,
	}
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.MaxDuration <= 0 {
		c.MaxDuration = DefaultMaxDuration
	}
	if c.SuccessDelay < 0 {
		c.SuccessDelay = 0
	}
	return c
}

type Fetcher interface {
	GetPayment(ctx context.Context, paymentID string) (*entity.Payment, error)
}

type FetcherFunc func(ctx context.Context, paymentID string) (*entity.Payment, error)

func (f FetcherFunc) GetPayment(ctx context.Context, paymentID string) (*entity.Payment, error) {
	return f(ctx, paymentID)
}

// Hooks are invoked from the watch goroutine. Any of them may be nil.
type Hooks struct {
	OnUpdate  func(p *entity.Payment)
	OnPaid    func(ctx context.Context, p *entity.Payment)
	OnFailed  func(p *entity.Payment)
	OnTimeout func(last *entity.Payment)
	OnDismiss func()
}

type Result struct {
	PaymentID  string
	Outcome    Outcome
	Last       *entity.Payment
	Polls      int
	StartedAt  time.Time
	FinishedAt time.Time
}

type Tracker struct {
	fetcher Fetcher
	cfg     Config
	logger  logrus.FieldLogger
}

func NewTracker(fetcher Fetcher, cfg Config, logger logrus.FieldLogger) *Tracker {
	if logger == nil {
		logger = logrus.WithField("module", "payment-tracker")
	}
	return &Tracker{
		fetcher: fetcher,
		cfg:     cfg.withDefaults(),
		logger:  logger,
	}
}

func (t *Tracker) Config() Config {
	return t.cfg
}

// Watch starts polling paymentID in its own goroutine. The first poll fires
// one interval after the call.
func (t *Tracker) Watch(ctx context.Context, paymentID string, hooks Hooks) *Watch {
	ctx, cancel := context.WithCancel(ctx)
	w := &Watch{
		paymentID: paymentID,
		startedAt: time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	go t.run(ctx, w, hooks)
	return w
}

type Watch struct {
	paymentID string
	startedAt time.Time
	cancel    context.CancelFunc
	done      chan struct{}

	mu     sync.Mutex
	result Result
}

func (w *Watch) PaymentID() string {
	return w.paymentID
}

func (w *Watch) StartedAt() time.Time {
	return w.startedAt
}

// Stop cancels the watch and waits for its goroutine to exit. No fetch or
// hook runs after Stop returns.
func (w *Watch) Stop() {
	w.cancel()
	<-w.done
}

func (w *Watch) Done() <-chan struct{} {
	return w.done
}

// Result is final once Done is closed.
func (w *Watch) Result() Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

func (w *Watch) finished() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

func (t *Tracker) run(ctx context.Context, w *Watch, hooks Hooks) {
	defer close(w.done)
	defer w.cancel()

	startedAt := w.startedAt
	deadline := startedAt.Add(t.cfg.MaxDuration)
	logger := t.logger.WithField("payment_id", w.paymentID)

	ticker := time.NewTicker(t.cfg.PollInterval)
	defer ticker.Stop()
	ceiling := time.NewTimer(t.cfg.MaxDuration)
	defer ceiling.Stop()

	var (
		last  *entity.Payment
		polls int
	)
	finish := func(outcome Outcome) {
		w.mu.Lock()
		w.result = Result{
			PaymentID:  w.paymentID,
			Outcome:    outcome,
			Last:       last,
			Polls:      polls,
			StartedAt:  startedAt,
			FinishedAt: time.Now(),
		}
		w.mu.Unlock()
		logger.WithFields(logrus.Fields{
			"outcome": outcome,
			"polls":   polls,
		}).Info("payment_tracking_finished")
	}
	timeout := func() {
		if hooks.OnTimeout != nil {
			hooks.OnTimeout(last)
		}
		finish(OutcomeTimedOut)
	}

	logger.Info("payment_tracking_started")

	for {
		select {
		case <-ctx.Done():
			finish(OutcomeStopped)
			return
		case <-ceiling.C:
			timeout()
			return
		case <-ticker.C:
		}

		if !time.Now().Before(deadline) {
			timeout()
			return
		}

		pollCtx, cancelPoll := context.WithDeadline(ctx, deadline)
		p, err := t.fetcher.GetPayment(pollCtx, w.paymentID)
		cancelPoll()

		if ctx.Err() != nil {
			finish(OutcomeStopped)
			return
		}
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && !time.Now().Before(deadline) {
				timeout()
				return
			}
			logger.WithError(err).Warn("payment_poll_failed")
			continue
		}
		if p == nil {
			logger.Warn("payment_poll_empty")
			continue
		}

		polls++
		last = p

		switch {
		case p.Status.IsPaid():
			if hooks.OnPaid != nil {
				hooks.OnPaid(ctx, p)
			}
			finish(OutcomePaid)
			t.dismissAfterDelay(ctx, hooks)
			return
		case p.Status.IsFailure():
			if hooks.OnFailed != nil {
				hooks.OnFailed(p)
			}
			finish(OutcomeFailed)
			return
		default:
			if hooks.OnUpdate != nil {
				hooks.OnUpdate(p)
			}
		}
	}
}

func (t *Tracker) dismissAfterDelay(ctx context.Context, hooks Hooks) {
	if hooks.OnDismiss == nil {
		return
	}
	timer := time.NewTimer(t.cfg.SuccessDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
		hooks.OnDismiss()
	}
}
