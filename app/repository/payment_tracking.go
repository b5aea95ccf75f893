package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

var (
	ErrTrackingNotFound      = errors.New("payment tracking not found")
	ErrTrackingAlreadyExists = errors.New("payment tracking already exists")
)

const trackingColumns = `
	id, payment_id, user_id, last_status, outcome, polls,
	started_at, finished_at, created_at, updated_at
`

type PaymentTrackingRepository struct {
	db DBTX
}

func NewPaymentTrackingRepository(db DBTX) *PaymentTrackingRepository {
	return &PaymentTrackingRepository{db: db}
}

func (r *PaymentTrackingRepository) Create(ctx context.Context, item *entity.PaymentTracking) error {
	query := `
		INSERT INTO payment_trackings (` + trackingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.PaymentID,
		nullableStringValue(item.UserID),
		string(item.LastStatus),
		item.Outcome,
		item.Polls,
		item.StartedAt.UTC(),
		nullableTimeValue(item.FinishedAt),
		item.CreatedAt.UTC(),
		item.UpdatedAt.UTC(),
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrTrackingAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PaymentTrackingRepository) Update(ctx context.Context, item *entity.PaymentTracking) error {
	query := `
		UPDATE payment_trackings
		SET user_id = ?, last_status = ?, outcome = ?, polls = ?,
		    started_at = ?, finished_at = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		nullableStringValue(item.UserID),
		string(item.LastStatus),
		item.Outcome,
		item.Polls,
		item.StartedAt.UTC(),
		nullableTimeValue(item.FinishedAt),
		item.UpdatedAt.UTC(),
		item.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTrackingNotFound
	}
	return nil
}

func (r *PaymentTrackingRepository) FindByPaymentID(ctx context.Context, paymentID string) (*entity.PaymentTracking, error) {
	query := `SELECT ` + trackingColumns + ` FROM payment_trackings WHERE payment_id = ?`

	item := &entity.PaymentTracking{}
	if err := scanPaymentTracking(r.db.QueryRowContext(ctx, query, paymentID), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item, nil
}

// ListUnresolved returns watches that ended without a terminal status, or
// were left running by a process that went away, last touched before olderThan.
func (r *PaymentTrackingRepository) ListUnresolved(ctx context.Context, olderThan time.Time, limit int) ([]*entity.PaymentTracking, error) {
	query := `
		SELECT ` + trackingColumns + `
		FROM payment_trackings
		WHERE outcome IN (?, ?, ?)
		  AND updated_at < ?
		ORDER BY updated_at ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query,
		entity.TrackingOutcomeWatching,
		entity.TrackingOutcomeTimedOut,
		entity.TrackingOutcomeStopped,
		olderThan.UTC(),
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.PaymentTracking, 0)
	for rows.Next() {
		item := &entity.PaymentTracking{}
		if err := scanPaymentTracking(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPaymentTracking(scanner rowScanner, item *entity.PaymentTracking) error {
	var userID sql.NullString
	var lastStatus string
	var finishedAt sql.NullTime

	err := scanner.Scan(
		&item.ID,
		&item.PaymentID,
		&userID,
		&lastStatus,
		&item.Outcome,
		&item.Polls,
		&item.StartedAt,
		&finishedAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	item.LastStatus = entity.PaymentStatus(lastStatus)
	if userID.Valid {
		item.UserID = &userID.String
	} else {
		item.UserID = nil
	}
	if finishedAt.Valid {
		item.FinishedAt = &finishedAt.Time
	} else {
		item.FinishedAt = nil
	}
	return nil
}
