// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/services"
)

const (
	tickInterval  = time.Second
	frameInterval = 100 * time.Millisecond
	recordTimeout = 5 * time.Second
)

// tickMsg advances the countdown by one second. Ticks from an older
// generation belong to a cancelled tick source and are dropped.
type tickMsg struct{ gen int }

// frameMsg redraws the ring while the clock runs.
type frameMsg struct{ gen int }

// quitRequestMsg asks the model to quit once pending records are saved.
type quitRequestMsg struct{}

// recordedMsg reports the outcome of saving a completed phase.
type recordedMsg struct {
	record *domain.PhaseRecord
	err    error
}

// Model represents the TUI state. The session is only ever touched from
// Update, which bubbletea runs on a single goroutine.
type Model struct {
	session *services.SessionService
	history *services.HistoryService
	logger  *slog.Logger
	theme   config.ThemeConfig

	help   help.Model
	bar    progress.Model
	inline bool

	width  int
	height int

	// gen identifies the live tick source. Bumping it cancels the
	// pending tick and frame loops.
	gen int

	notice   string
	lastErr  error
	recorded int

	// pending counts record commands that have not reported back. Quitting
	// waits for them so storage is not closed under a save.
	pending  int
	quitting bool
}

// Options configures a Model.
type Options struct {
	Theme     *config.ThemeConfig
	Inline    bool
	AutoStart bool
}

// NewModel creates a TUI model for session. history may be nil.
func NewModel(session *services.SessionService, history *services.HistoryService, logger *slog.Logger, opts Options) Model {
	if logger == nil {
		logger = slog.Default()
	}
	theme := resolveTheme(opts.Theme)
	m := Model{
		session: session,
		history: history,
		logger:  logger,
		theme:   theme,
		help:    help.New(),
		bar:     progress.New(progress.WithSolidFill(theme.ColorWork), progress.WithoutPercentage()),
		inline:  opts.Inline,
	}
	if opts.Inline {
		m.width = terminalWidth()
		m.bar.Width = inlineBarWidth(m.width)
	}
	if opts.AutoStart {
		m.session.Toggle()
		m.gen++
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.session.Running() {
		return m.armCmd()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = inlineBarWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m.handleTick(msg)

	case frameMsg:
		if msg.gen != m.gen || !m.session.Running() || m.session.Snapshot().RingFull {
			return m, nil
		}
		return m, frameCmd(m.gen)

	case quitRequestMsg:
		return m.quit()

	case recordedMsg:
		m.pending--
		if msg.err != nil {
			m.lastErr = msg.err
			m.logger.Warn("failed to record phase", "phase", msg.record.Phase, "error", msg.err)
		} else {
			m.recorded++
		}
		if m.quitting && m.pending <= 0 {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.quit()

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Toggle):
		m.notice = ""
		m.lastErr = nil
		m.gen++
		if m.session.Toggle() == domain.StatusRunning {
			return m, m.armCmd()
		}
		return m, nil

	case key.Matches(msg, keys.Skip):
		ev := m.session.Skip()
		m.gen++
		m.notice = fmt.Sprintf("Skipped %s. %s is ready.", ev.From.Label(), ev.To.Label())
		return m, nil
	}

	return m, nil
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}

	res := m.session.Tick()
	if !res.Event.Applied {
		return m, nil
	}
	if !res.Event.RolledOver {
		return m, tickCmd(m.gen)
	}

	m.gen++
	m.notice = completionNotice(res.Event)
	cmd := m.recordCmd(res.Completed)
	if cmd != nil {
		m.pending++
	}
	return m, cmd
}

// quit exits at once unless a record is still being saved. A second
// request while waiting exits without waiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.pending <= 0 || m.quitting {
		return m, tea.Quit
	}
	m.quitting = true
	m.gen++
	m.notice = "Saving history..."
	m.logger.Info("waiting for history before quitting", "pending", m.pending)
	return m, nil
}

// armCmd starts the tick and frame loops for the current generation.
func (m Model) armCmd() tea.Cmd {
	return tea.Batch(tickCmd(m.gen), frameCmd(m.gen))
}

func (m Model) recordCmd(rec *domain.PhaseRecord) tea.Cmd {
	if rec == nil || m.history == nil || !m.history.Enabled() {
		return nil
	}
	history := m.history
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		return recordedMsg{record: rec, err: history.Record(ctx, rec)}
	}
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func frameCmd(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func completionNotice(ev domain.TickEvent) string {
	if ev.From == domain.PhaseWork {
		return "Work complete. Time for a rest."
	}
	return "Rest over. Ready to work."
}

func (m Model) View() string {
	if m.inline {
		return m.viewInline()
	}
	if m.width == 0 {
		return "Loading..."
	}

	snap := m.session.Snapshot()
	color := phaseColor(m.theme, snap.Phase, snap.Status)

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	sections = append(sections, titleStyle.Render("🍅 pomo"))

	label := []string{
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(snap.Phase.Label()),
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp)).Render(snap.Status.Label()),
	}
	sections = append(sections, renderRing(m.theme.RingRadius, snap.Fraction, color, lipgloss.Color(m.theme.ColorHelp), label))
	sections = append(sections, "")
	sections = append(sections, renderBigTime(snap.TimeText, color, m.width))
	sections = append(sections, "")

	button := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Render(snap.Button)
	sections = append(sections, button)

	if m.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Italic(true).Foreground(color).Render(m.notice))
	}
	if m.lastErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
		sections = append(sections, errStyle.Render(fmt.Sprintf("Error: %v", m.lastErr)))
	}

	sections = append(sections, "")
	sections = append(sections, m.help.View(keys))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
