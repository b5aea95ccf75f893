package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/backend"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

type mockProfiles struct {
	profileFn func(ctx context.Context) (*entity.User, error)
	calls     int
}

func (m *mockProfiles) Profile(ctx context.Context) (*entity.User, error) {
	m.calls++
	return m.profileFn(ctx)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTOMLFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.toml")
	file := NewTOMLFile(path)

	state, err := file.Load()
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if state.Token != "" || state.User != nil {
		t.Fatalf("expected empty state, got %+v", state)
	}

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err = file.Save(&State{Token: "tok", User: &entity.User{
		ID: "u1", Username: "ana", Email: "ana@test", Plan: entity.PlanPlus, TotalPoints: 40, Level: 3, CreatedAt: created,
	}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}

	loaded, err := file.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Token != "tok" || loaded.User == nil || loaded.User.Plan != entity.PlanPlus || !loaded.User.CreatedAt.Equal(created) {
		t.Fatalf("unexpected state: %+v %+v", loaded, loaded.User)
	}

	if err := file.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := file.Clear(); err != nil {
		t.Fatalf("second clear should be a no-op: %v", err)
	}
}

func TestStorePersistsAuthAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	store := NewStore(NewTOMLFile(path), nil)
	if err := store.SetAuth(" tok ", &entity.User{ID: "u1", Plan: entity.PlanStandard}); err != nil {
		t.Fatalf("set auth: %v", err)
	}

	reloaded := NewStore(NewTOMLFile(path), nil)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if reloaded.Token() != "tok" || reloaded.Plan() != entity.PlanStandard {
		t.Fatalf("unexpected reloaded state: token=%q plan=%s", reloaded.Token(), reloaded.Plan())
	}

	if err := reloaded.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if reloaded.Token() != "" || reloaded.User() != nil || reloaded.Plan() != entity.PlanFree {
		t.Fatal("expected cleared store")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected session file removed, got %v", err)
	}
}

func TestStoreUserIsCopied(t *testing.T) {
	store := NewStore(nil, nil)
	user := &entity.User{ID: "u1", Plan: entity.PlanFree}
	_ = store.SetUser(user)
	user.Plan = entity.PlanPlus

	got := store.User()
	if got.Plan != entity.PlanFree {
		t.Fatal("store must not share the caller's user")
	}
	got.Plan = entity.PlanPlus
	if store.Plan() != entity.PlanFree {
		t.Fatal("callers must not mutate the cached user")
	}
}

func TestAuthenticatedUsesExpClaim(t *testing.T) {
	now := time.Now()
	store := NewStore(nil, nil)

	if store.Authenticated(now) {
		t.Fatal("expected unauthenticated without token")
	}

	_ = store.SetAuth(signedToken(t, now.Add(time.Hour)), nil)
	if !store.Authenticated(now) {
		t.Fatal("expected authenticated with future exp")
	}
	if store.Authenticated(now.Add(2 * time.Hour)) {
		t.Fatal("expected unauthenticated after exp")
	}

	_ = store.SetAuth("opaque-token", nil)
	if !store.Authenticated(now) {
		t.Fatal("opaque tokens without exp are treated as valid")
	}
}

func TestCurrentUserFetchesOnceThenCaches(t *testing.T) {
	profiles := &mockProfiles{profileFn: func(ctx context.Context) (*entity.User, error) {
		return &entity.User{ID: "u1", Plan: entity.PlanStandard}, nil
	}}
	store := NewStore(nil, profiles)
	_ = store.SetAuth("tok", nil)

	for i := 0; i < 3; i++ {
		user, err := store.CurrentUser(context.Background())
		if err != nil {
			t.Fatalf("current user: %v", err)
		}
		if user.Plan != entity.PlanStandard {
			t.Fatalf("unexpected plan: %s", user.Plan)
		}
	}
	if profiles.calls != 1 {
		t.Fatalf("expected one profile fetch, got %d", profiles.calls)
	}

	if _, err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if profiles.calls != 2 {
		t.Fatalf("expected refresh to refetch, got %d calls", profiles.calls)
	}
}

func TestRefreshWithoutTokenFails(t *testing.T) {
	store := NewStore(nil, &mockProfiles{profileFn: func(ctx context.Context) (*entity.User, error) {
		t.Fatal("no fetch expected")
		return nil, nil
	}})
	if _, err := store.Refresh(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestRefreshSendsSessionToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"u1","username":"ana","plan":"plus"}`))
	}))
	defer srv.Close()

	store := NewStore(nil, backend.NewClient(srv.URL, time.Second))
	_ = store.SetAuth("session-token", &entity.User{ID: "u1", Plan: entity.PlanFree})

	user, err := store.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if user.Plan != entity.PlanPlus || store.Plan() != entity.PlanPlus {
		t.Fatalf("expected refreshed plus plan, got %s / %s", user.Plan, store.Plan())
	}
}

func TestProfileProviderUsesContextToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer request-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"u9","plan":"standard"}`))
	}))
	defer srv.Close()

	provider := NewProfileProvider(backend.NewClient(srv.URL, time.Second))
	if _, err := provider.CurrentUser(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	user, err := provider.Refresh(backend.WithToken(context.Background(), "request-token"))
	if err != nil || user.ID != "u9" || user.Plan != entity.PlanStandard {
		t.Fatalf("unexpected result: %+v %v", user, err)
	}
}
