//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

const (
	freeUserToken     = "e2e-free-token"
	upgradeUserToken  = "e2e-upgrade-token"
	paidAfterPolls    = 2
	freeUserGoalCount = 3
)

type mockUser struct {
	id    string
	plan  string
	goals int
}

type mockPayment struct {
	plan   string
	owner  string
	polls  int
	status string
}

// backendMock stands in for the InteliWallet REST API the gateway calls.
// Payments turn PAID after a few reads.
type backendMock struct {
	mu       sync.Mutex
	users    map[string]*mockUser
	payments map[string]*mockPayment
	next     int
}

func newBackendMock() *backendMock {
	return &backendMock{
		users: map[string]*mockUser{
			freeUserToken:    {id: "e2e-free", plan: "free", goals: freeUserGoalCount},
			upgradeUserToken: {id: "e2e-upgrade", plan: "free"},
		},
		payments: make(map[string]*mockPayment),
	}
}

func (b *backendMock) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	user, ok := b.users[token]
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api")
	switch {
	case path == "/users/profile":
		fmt.Fprintf(w, `{"id":%q,"username":%q,"email":"%s@example.com","plan":%q}`, user.id, user.id, user.id, user.plan)
	case path == "/goals" && r.Method == http.MethodGet:
		goals := make([]string, 0, user.goals)
		for i := 0; i < user.goals; i++ {
			goals = append(goals, fmt.Sprintf(`{"id":"%s-g%d","title":"Goal","status":"active","targetAmount":100}`, user.id, i))
		}
		fmt.Fprintf(w, "[%s]", strings.Join(goals, ","))
	case path == "/goals" && r.Method == http.MethodPost:
		user.goals++
		fmt.Fprintf(w, `{"id":"%s-g%d","title":"Goal","status":"active","targetAmount":100}`, user.id, user.goals)
	case path == "/challenges" && r.Method == http.MethodGet:
		_, _ = w.Write([]byte(`[]`))
	case path == "/subscriptions" && r.Method == http.MethodPost:
		var body struct {
			Plan string `json:"plan"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.next++
		id := fmt.Sprintf("pay-e2e-%d", b.next)
		b.payments[id] = &mockPayment{plan: strings.ToLower(body.Plan), owner: token, status: "PENDING"}
		fmt.Fprintf(w, `{"id":%q,"amount":5,"status":"PENDING","paymentMethod":"PIX","pixCode":"00020126"}`, id)
	case strings.HasPrefix(path, "/subscriptions/payments/"):
		id := strings.TrimPrefix(path, "/subscriptions/payments/")
		p, ok := b.payments[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Payment not found"}`))
			return
		}
		p.polls++
		if p.status == "PENDING" && p.polls >= paidAfterPolls {
			p.status = "PAID"
			b.users[p.owner].plan = p.plan
		}
		fmt.Fprintf(w, `{"id":%q,"amount":5,"status":%q}`, id, p.status)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not found"}`))
	}
}
