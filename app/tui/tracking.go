// Package tui renders a payment watch in the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/entity"
	"github.com/vibast-solutions/ms-go-inteliwallet-billing/app/payment"
)

type phase int

const (
	phaseWaiting phase = iota
	phasePaid
	phaseFailed
	phaseTimedOut
)

// Model shows the progress of one payment until its watch finishes or the
// user quits, which stops the watch.
type Model struct {
	paymentID string
	feed      *Feed
	stop      func()
	spinner   spinner.Model

	phase     phase
	last      *entity.Payment
	updates   int
	dismissed bool
	result    *payment.Result
	quitting  bool
}

func NewModel(paymentID string, feed *Feed, stop func()) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return Model{
		paymentID: paymentID,
		feed:      feed,
		stop:      stop,
		spinner:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.feed.Wait())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.stop != nil {
				m.stop()
			}
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseWaiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case UpdateMsg:
		m.last = msg.Payment
		m.updates++
		return m, m.feed.Wait()

	case PaidMsg:
		m.last = msg.Payment
		m.phase = phasePaid
		return m, m.feed.Wait()

	case FailedMsg:
		m.last = msg.Payment
		m.phase = phaseFailed
		return m, m.feed.Wait()

	case TimeoutMsg:
		if msg.Last != nil {
			m.last = msg.Last
		}
		m.phase = phaseTimedOut
		return m, m.feed.Wait()

	case DismissMsg:
		m.dismissed = true
		return m, m.feed.Wait()

	case FinishedMsg:
		result := msg.Result
		m.result = &result
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Payment " + m.paymentID))
	b.WriteString("  ")
	var status entity.PaymentStatus
	if m.last != nil {
		status = m.last.Status
	}
	b.WriteString(statusBadge(status))
	b.WriteString("\n\n")

	switch m.phase {
	case phasePaid:
		b.WriteString(successStyle.Render("Payment confirmed! Your plan has been upgraded."))
		if !m.dismissed {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("Refreshing your plan..."))
		}
	case phaseFailed:
		b.WriteString(failureStyle.Render(fmt.Sprintf("Payment not completed (%s).", status)))
	case phaseTimedOut:
		b.WriteString(warningStyle.Render("Payment confirmation is taking longer than expected. Check your subscription later."))
	default:
		if m.quitting {
			b.WriteString(dimStyle.Render("Stopped watching the payment."))
		} else {
			b.WriteString(m.spinner.View())
			b.WriteString(" Waiting for payment confirmation...")
		}
	}
	b.WriteString("\n")

	if m.phase == phaseWaiting && !m.quitting {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d status checks · q to stop watching", m.updates)))
		b.WriteString("\n")
	}
	return b.String()
}

// Outcome is the result of the watch, or OutcomeStopped when the user quit
// before it finished.
func (m Model) Outcome() payment.Outcome {
	if m.result != nil {
		return m.result.Outcome
	}
	switch m.phase {
	case phasePaid:
		return payment.OutcomePaid
	case phaseFailed:
		return payment.OutcomeFailed
	case phaseTimedOut:
		return payment.OutcomeTimedOut
	}
	return payment.OutcomeStopped
}

func (m Model) Last() *entity.Payment {
	return m.last
}
