package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/payment"
)

type UpdateMsg struct{ Payment *entity.Payment }

type PaidMsg struct{ Payment *entity.Payment }

type FailedMsg struct{ Payment *entity.Payment }

type TimeoutMsg struct{ Last *entity.Payment }

type DismissMsg struct{}

// FinishedMsg is the last message of a feed, sent once the watch has ended.
type FinishedMsg struct{ Result payment.Result }

// Feed turns the callbacks of a payment watch into tea messages.
type Feed struct {
	events chan tea.Msg
	closed chan struct{}
	once   sync.Once
}

func NewFeed() *Feed {
	return &Feed{
		events: make(chan tea.Msg, 16),
		closed: make(chan struct{}),
	}
}

func (f *Feed) Hooks() payment.Hooks {
	return payment.Hooks{
		OnUpdate: func(p *entity.Payment) {
			// Intermediate statuses may be dropped when the UI lags.
			select {
			case f.events <- UpdateMsg{Payment: p}:
			default:
			}
		},
		OnPaid:    func(_ context.Context, p *entity.Payment) { f.send(PaidMsg{Payment: p}) },
		OnFailed:  func(p *entity.Payment) { f.send(FailedMsg{Payment: p}) },
		OnTimeout: func(last *entity.Payment) { f.send(TimeoutMsg{Last: last}) },
		OnDismiss: func() { f.send(DismissMsg{}) },
	}
}

// Follow sends a FinishedMsg when w ends.
func (f *Feed) Follow(w *payment.Watch) {
	go func() {
		<-w.Done()
		f.send(FinishedMsg{Result: w.Result()})
	}()
}

// Close releases senders blocked on a program that is no longer reading.
func (f *Feed) Close() {
	f.once.Do(func() { close(f.closed) })
}

// Wait blocks until the next message of the feed.
func (f *Feed) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-f.events:
			return msg
		case <-f.closed:
			return nil
		}
	}
}

func (f *Feed) send(msg tea.Msg) {
	select {
	case f.events <- msg:
	case <-f.closed:
	}
}
