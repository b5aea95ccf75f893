package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/payment"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/config"
)

const trackingWriteTimeout = 10 * time.Second

// paymentIDParams are read in order; the first non-empty value wins.
var paymentIDParams = []string{"paymentId", "payment_id", "id", "transactionId", "transaction_id"}

type paymentBackend interface {
	GetPayment(ctx context.Context, paymentID string) (*entity.Payment, error)
}

type trackingRepository interface {
	Create(ctx context.Context, item *entity.PaymentTracking) error
	Update(ctx context.Context, item *entity.PaymentTracking) error
	FindByPaymentID(ctx context.Context, paymentID string) (*entity.PaymentTracking, error)
	ListUnresolved(ctx context.Context, olderThan time.Time, limit int) ([]*entity.PaymentTracking, error)
}

type userInvalidator interface {
	InvalidateUser(userID string)
}

// Completion is what the payment completion pages render.
type Completion struct {
	PaymentID string
	Payment   *entity.Payment
	// User is the refreshed profile, set only when the payment is paid.
	User *entity.User
}

type PaymentService struct {
	backend     paymentBackend
	users       userProvider
	registry    *payment.Registry
	trackings   trackingRepository
	invalidator userInvalidator
	cfg         config.JobsConfig
	logger      logrus.FieldLogger
}

// NewPaymentService wires the payment flows. trackings and invalidator may be
// nil: watches then live only in memory and no cache is dropped on success.
func NewPaymentService(
	backend paymentBackend,
	users userProvider,
	registry *payment.Registry,
	trackings trackingRepository,
	invalidator userInvalidator,
	cfg config.JobsConfig,
) *PaymentService {
	return &PaymentService{
		backend:     backend,
		users:       users,
		registry:    registry,
		trackings:   trackings,
		invalidator: invalidator,
		cfg:         cfg,
		logger:      logrus.WithField("module", "payment-service"),
	}
}

// ResolvePaymentID picks the payment id out of a redirect's query string.
func ResolvePaymentID(params url.Values) string {
	for _, key := range paymentIDParams {
		if value := strings.TrimSpace(params.Get(key)); value != "" {
			return value
		}
	}
	return ""
}

func (s *PaymentService) Complete(ctx context.Context, params url.Values) (*Completion, error) {
	paymentID := ResolvePaymentID(params)
	if paymentID == "" {
		return nil, &LookupError{Params: flattenParams(params), Err: ErrPaymentIDMissing}
	}

	p, err := s.backend.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, &LookupError{PaymentID: paymentID, Params: flattenParams(params), Err: ErrPaymentNotFound}
		}
		return nil, fmt.Errorf("loading payment %s: %w", paymentID, err)
	}
	if p == nil {
		return nil, &LookupError{PaymentID: paymentID, Params: flattenParams(params), Err: ErrPaymentNotFound}
	}

	completion := &Completion{PaymentID: paymentID, Payment: p}
	if p.Status.IsPaid() {
		completion.User = s.onPaid(ctx, p)
	}
	return completion, nil
}

// Track starts, or joins, the watch over paymentID. The watch outlives the
// caller's context cancellation but keeps its values, so polls carry the
// same bearer token.
func (s *PaymentService) Track(ctx context.Context, paymentID string, hooks payment.Hooks) (*payment.Watch, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrPaymentIDMissing
	}

	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if owner, ok := s.registry.Owner(paymentID); ok && owner != user.ID {
		return nil, ErrTrackingNotFound
	}

	w, started := s.registry.Start(context.WithoutCancel(ctx), paymentID, user.ID, s.wrapHooks(hooks))
	if !started || s.trackings == nil {
		return w, nil
	}

	record, err := s.beginTracking(ctx, paymentID, user)
	if err != nil {
		s.logger.WithError(err).WithField("payment_id", paymentID).Warn("payment_tracking_record_failed")
		return w, nil
	}
	go s.finishTracking(record, w)
	return w, nil
}

// Tracking reports the state of the watch over paymentID regardless of who
// started it. The boolean is true while a watch is running in this process.
func (s *PaymentService) Tracking(ctx context.Context, paymentID string) (*entity.PaymentTracking, bool, error) {
	w, ok := s.registry.Get(paymentID)
	live := ok && !isDone(w)

	if s.trackings != nil {
		item, err := s.trackings.FindByPaymentID(ctx, paymentID)
		if err != nil {
			return nil, false, err
		}
		if item != nil {
			return item, live, nil
		}
	}

	if !ok {
		return nil, false, ErrTrackingNotFound
	}
	var item *entity.PaymentTracking
	if live {
		started := w.StartedAt().UTC()
		item = &entity.PaymentTracking{
			PaymentID: paymentID,
			Outcome:   entity.TrackingOutcomeWatching,
			StartedAt: started,
			UpdatedAt: started,
		}
	} else {
		item = trackingFromResult(w.Result())
	}
	if owner, found := s.registry.Owner(paymentID); found && owner != "" {
		item.UserID = &owner
	}
	return item, live, nil
}

// OwnTracking is Tracking limited to watches started by the current user.
// Someone else's watch reads as not found.
func (s *PaymentService) OwnTracking(ctx context.Context, paymentID string) (*entity.PaymentTracking, bool, error) {
	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return nil, false, err
	}

	item, live, err := s.Tracking(ctx, paymentID)
	if err != nil {
		return nil, false, err
	}
	if item.UserID == nil || *item.UserID != user.ID {
		s.logger.WithFields(logrus.Fields{
			"payment_id": paymentID,
			"user_id":    user.ID,
		}).Warn("payment_tracking_foreign_read")
		return nil, false, ErrTrackingNotFound
	}
	return item, live, nil
}

// StopTracking tears down the current user's live watch over paymentID.
func (s *PaymentService) StopTracking(ctx context.Context, paymentID string) error {
	user, err := s.users.CurrentUser(ctx)
	if err != nil {
		return err
	}

	owner, ok := s.registry.Owner(paymentID)
	if !ok || owner != user.ID {
		return ErrTrackingNotFound
	}
	if !s.registry.Stop(paymentID) {
		return ErrTrackingNotFound
	}
	return nil
}

// RunReconcileBatch reads once more the payments whose watch ended without a
// terminal status, so a payment resolved after the ceiling is recorded.
func (s *PaymentService) RunReconcileBatch(ctx context.Context) error {
	if s.trackings == nil {
		return ErrTrackingNotEnabled
	}

	now := time.Now().UTC()
	items, err := s.trackings.ListUnresolved(ctx, now.Add(-s.cfg.ReconcileInterval), s.cfg.ReconcileBatchSize)
	if err != nil {
		return err
	}

	for _, item := range items {
		if w, ok := s.registry.Get(item.PaymentID); ok && !isDone(w) {
			continue
		}

		p, err := s.backend.GetPayment(ctx, item.PaymentID)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.WithError(err).WithField("payment_id", item.PaymentID).Warn("reconcile_payment_failed")
			if !errors.Is(err, backend.ErrNotFound) {
				continue
			}
		}

		finished := time.Now().UTC()
		item.UpdatedAt = finished
		switch {
		case p != nil && p.Status.IsPaid():
			item.Outcome = entity.TrackingOutcomePaid
		case p != nil && p.Status.IsFailure():
			item.Outcome = entity.TrackingOutcomeFailed
		default:
			item.Outcome = entity.TrackingOutcomeUnresolved
		}
		if p != nil {
			item.LastStatus = p.Status
		}
		if item.FinishedAt == nil {
			item.FinishedAt = &finished
		}

		if err := s.trackings.Update(ctx, item); err != nil {
			s.logger.WithError(err).WithField("payment_id", item.PaymentID).Warn("reconcile_update_failed")
			continue
		}
		s.logger.WithFields(logrus.Fields{
			"payment_id": item.PaymentID,
			"outcome":    item.Outcome,
		}).Info("payment_reconciled")
	}

	return nil
}

// StopAll tears down every live watch; used on shutdown.
func (s *PaymentService) StopAll() {
	s.registry.StopAll()
}

func (s *PaymentService) wrapHooks(hooks payment.Hooks) payment.Hooks {
	wrapped := hooks
	wrapped.OnPaid = func(ctx context.Context, p *entity.Payment) {
		s.onPaid(ctx, p)
		if hooks.OnPaid != nil {
			hooks.OnPaid(ctx, p)
		}
	}
	return wrapped
}

// onPaid refreshes the profile so the new plan is visible and drops the
// collections whose limits depend on it.
func (s *PaymentService) onPaid(ctx context.Context, p *entity.Payment) *entity.User {
	user, err := s.users.Refresh(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("payment_id", p.ID).Warn("profile_refresh_failed")
		return nil
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateUser(user.ID)
	}
	s.logger.WithFields(logrus.Fields{
		"payment_id": p.ID,
		"user_id":    user.ID,
		"plan":       user.Plan,
	}).Info("payment_confirmed")
	return user
}

func (s *PaymentService) beginTracking(ctx context.Context, paymentID string, user *entity.User) (*entity.PaymentTracking, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), trackingWriteTimeout)
	defer cancel()

	now := time.Now().UTC()
	var userID *string
	if user != nil && user.ID != "" {
		id := user.ID
		userID = &id
	}

	existing, err := s.trackings.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.UserID = userID
		existing.Outcome = entity.TrackingOutcomeWatching
		existing.Polls = 0
		existing.StartedAt = now
		existing.FinishedAt = nil
		existing.UpdatedAt = now
		if err := s.trackings.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	record := &entity.PaymentTracking{
		ID:         uuid.NewString(),
		PaymentID:  paymentID,
		UserID:     userID,
		LastStatus: entity.PaymentStatusPending,
		Outcome:    entity.TrackingOutcomeWatching,
		StartedAt:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.trackings.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *PaymentService) finishTracking(record *entity.PaymentTracking, w *payment.Watch) {
	<-w.Done()
	result := w.Result()

	record.Outcome = string(result.Outcome)
	record.Polls = int32(result.Polls)
	if result.Last != nil {
		record.LastStatus = result.Last.Status
	}
	finished := result.FinishedAt.UTC()
	record.FinishedAt = &finished
	record.UpdatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), trackingWriteTimeout)
	defer cancel()
	if err := s.trackings.Update(ctx, record); err != nil {
		s.logger.WithError(err).WithField("payment_id", record.PaymentID).Warn("payment_tracking_update_failed")
	}
}

func trackingFromResult(result payment.Result) *entity.PaymentTracking {
	finished := result.FinishedAt.UTC()
	item := &entity.PaymentTracking{
		PaymentID:  result.PaymentID,
		Outcome:    string(result.Outcome),
		Polls:      int32(result.Polls),
		StartedAt:  result.StartedAt.UTC(),
		FinishedAt: &finished,
		UpdatedAt:  finished,
	}
	if result.Last != nil {
		item.LastStatus = result.Last.Status
	}
	return item
}

func isDone(w *payment.Watch) bool {
	select {
	case <-w.Done():
		return true
	default:
		return false
	}
}

func flattenParams(params url.Values) map[string]string {
	flat := make(map[string]string, len(params))
	for key := range params {
		flat[key] = params.Get(key)
	}
	return flat
}
