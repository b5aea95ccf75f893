package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	_ "modernc.org/sqlite"
)

type fakeDB struct {
	execFn func(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if f.execFn != nil {
		return f.execFn(ctx, query, args...)
	}
	return fakeResult{rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type fakeResult struct {
	rowsAffected int64
	rowsErr      error
}

func (r fakeResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (r fakeResult) RowsAffected() (int64, error) {
	return r.rowsAffected, r.rowsErr
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	statements, err := Schema("sqlite")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}
	return db
}

func newTracking(id, paymentID, outcome string, updatedAt time.Time) *entity.PaymentTracking {
	userID := "user-1"
	return &entity.PaymentTracking{
		ID:         id,
		PaymentID:  paymentID,
		UserID:     &userID,
		LastStatus: entity.PaymentStatusPending,
		Outcome:    outcome,
		StartedAt:  updatedAt,
		CreatedAt:  updatedAt,
		UpdatedAt:  updatedAt,
	}
}

func TestCreateMapsMySQLDuplicate(t *testing.T) {
	repo := NewPaymentTrackingRepository(&fakeDB{execFn: func(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
		return nil, &mysqlDriver.MySQLError{Number: 1062, Message: "duplicate"}
	}})

	err := repo.Create(context.Background(), &entity.PaymentTracking{ID: "t1", PaymentID: "p1"})
	if !errors.Is(err, ErrTrackingAlreadyExists) {
		t.Fatalf("expected ErrTrackingAlreadyExists, got %v", err)
	}
}

func TestUpdateNoRowsAffected(t *testing.T) {
	repo := NewPaymentTrackingRepository(&fakeDB{execFn: func(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
		return fakeResult{rowsAffected: 0}, nil
	}})

	err := repo.Update(context.Background(), &entity.PaymentTracking{ID: "missing"})
	if !errors.Is(err, ErrTrackingNotFound) {
		t.Fatalf("expected ErrTrackingNotFound, got %v", err)
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if !isDuplicateEntryError(&mysqlDriver.MySQLError{Number: 1062}) {
		t.Fatal("expected true for mysql duplicate error")
	}
	if isDuplicateEntryError(&mysqlDriver.MySQLError{Number: 1146}) {
		t.Fatal("expected false for other mysql errors")
	}
	if isDuplicateEntryError(errors.New("boom")) {
		t.Fatal("expected false for generic error")
	}
}

func TestNullableHelpers(t *testing.T) {
	if nullableStringValue(nil) != nil {
		t.Fatal("expected nil for nil string")
	}
	blank := "   "
	if nullableStringValue(&blank) != nil {
		t.Fatal("expected nil for blank string")
	}
	s := "  user-1  "
	if got := nullableStringValue(&s); got != "user-1" {
		t.Fatalf("expected trimmed value, got %#v", got)
	}
	if nullableTimeValue(nil) != nil {
		t.Fatal("expected nil for nil time")
	}
}

func TestSchemaRejectsUnknownDriver(t *testing.T) {
	if _, err := Schema("postgres"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
	if stmts, err := Schema("mysql"); err != nil || len(stmts) == 0 {
		t.Fatalf("expected mysql schema, got %v %v", stmts, err)
	}
}

func TestSQLiteCreateFindUpdate(t *testing.T) {
	repo := NewPaymentTrackingRepository(openSQLite(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	item := newTracking("t1", "pay-1", entity.TrackingOutcomeWatching, now)
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, newTracking("t2", "pay-1", entity.TrackingOutcomeWatching, now)); !errors.Is(err, ErrTrackingAlreadyExists) {
		t.Fatalf("expected duplicate payment id to be rejected, got %v", err)
	}

	found, err := repo.FindByPaymentID(ctx, "pay-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.ID != "t1" || found.UserID == nil || *found.UserID != "user-1" || found.FinishedAt != nil {
		t.Fatalf("unexpected record: %+v", found)
	}

	finished := now.Add(time.Minute)
	found.Outcome = entity.TrackingOutcomePaid
	found.LastStatus = entity.PaymentStatusPaid
	found.Polls = 4
	found.FinishedAt = &finished
	found.UpdatedAt = finished
	if err := repo.Update(ctx, found); err != nil {
		t.Fatalf("update: %v", err)
	}

	reloaded, err := repo.FindByPaymentID(ctx, "pay-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Outcome != entity.TrackingOutcomePaid || reloaded.Polls != 4 || reloaded.FinishedAt == nil {
		t.Fatalf("unexpected reloaded record: %+v", reloaded)
	}

	missing, err := repo.FindByPaymentID(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil,nil for missing record, got %+v %v", missing, err)
	}
}

func TestSQLiteListUnresolved(t *testing.T) {
	repo := NewPaymentTrackingRepository(openSQLite(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []*entity.PaymentTracking{
		newTracking("a", "pay-a", entity.TrackingOutcomeTimedOut, base.Add(-2*time.Hour)),
		newTracking("b", "pay-b", entity.TrackingOutcomeWatching, base.Add(-time.Hour)),
		newTracking("c", "pay-c", entity.TrackingOutcomePaid, base.Add(-3*time.Hour)),
		newTracking("d", "pay-d", entity.TrackingOutcomeTimedOut, base.Add(time.Hour)),
		newTracking("e", "pay-e", entity.TrackingOutcomeUnresolved, base.Add(-4*time.Hour)),
	}
	for _, r := range records {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("create %s: %v", r.ID, err)
		}
	}

	items, err := repo.ListUnresolved(ctx, base, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		t.Fatalf("expected [a b], got %v", ids)
	}

	limited, err := repo.ListUnresolved(ctx, base, 1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d %v", len(limited), err)
	}
}
