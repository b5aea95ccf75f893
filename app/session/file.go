package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
)

// State is what a Persister stores between runs.
type State struct {
	Token string
	User  *entity.User
}

type Persister interface {
	Load() (*State, error)
	Save(state *State) error
	Clear() error
}

type fileState struct {
	Token   string    `toml:"token"`
	SavedAt time.Time `toml:"saved_at"`
	User    *fileUser `toml:"user,omitempty"`
}

type fileUser struct {
	ID                     string    `toml:"id"`
	Username               string    `toml:"username"`
	Email                  string    `toml:"email"`
	Avatar                 string    `toml:"avatar,omitempty"`
	Plan                   string    `toml:"plan"`
	TotalPoints            int64     `toml:"total_points"`
	Level                  int32     `toml:"level"`
	HasCompletedOnboarding bool      `toml:"has_completed_onboarding"`
	CreatedAt              time.Time `toml:"created_at"`
}

// TOMLFile persists the session in a TOML file readable only by its owner.
type TOMLFile struct {
	path string
}

func NewTOMLFile(path string) *TOMLFile {
	return &TOMLFile{path: path}
}

func (f *TOMLFile) Path() string {
	return f.path
}

// Load returns an empty state when the file does not exist.
func (f *TOMLFile) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &State{}, nil
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var stored fileState
	if err := toml.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}

	state := &State{Token: stored.Token}
	if u := stored.User; u != nil {
		plan, ok := entity.ParsePlanTier(u.Plan)
		if !ok {
			plan = entity.PlanFree
		}
		state.User = &entity.User{
			ID:                     u.ID,
			Username:               u.Username,
			Email:                  u.Email,
			Avatar:                 u.Avatar,
			Plan:                   plan,
			TotalPoints:            u.TotalPoints,
			Level:                  u.Level,
			HasCompletedOnboarding: u.HasCompletedOnboarding,
			CreatedAt:              u.CreatedAt,
		}
	}
	return state, nil
}

func (f *TOMLFile) Save(state *State) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	stored := fileState{SavedAt: time.Now().UTC()}
	if state != nil {
		stored.Token = state.Token
		if u := state.User; u != nil {
			stored.User = &fileUser{
				ID:                     u.ID,
				Username:               u.Username,
				Email:                  u.Email,
				Avatar:                 u.Avatar,
				Plan:                   string(u.Plan),
				TotalPoints:            u.TotalPoints,
				Level:                  u.Level,
				HasCompletedOnboarding: u.HasCompletedOnboarding,
				CreatedAt:              u.CreatedAt,
			}
		}
	}

	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating session file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(stored); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

func (f *TOMLFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}
