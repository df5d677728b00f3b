// Package loadui is a Bubble Tea progress view over a chunk-import drain,
// trimmed from the teacher's internal/ui (which renders a multi-stage build
// pipeline) down to the single stage cyan's loader actually has: per-module
// queued -> loading -> done/error.
package loadui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Status is one module's current load state.
type Status uint8

const (
	StatusQueued Status = iota
	StatusLoading
	StatusDone
	StatusError
)

func (s Status) label() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "queued"
	}
}

// Event reports one module's status transition.
type Event struct {
	Module string
	Status Status
}

type moduleItem struct {
	module string
	status Status
}

type model struct {
	title  string
	events <-chan Event
	sp     spinner.Model
	prog   progress.Model
	items  []moduleItem
	index  map[string]int
	width  int
	done   bool
}

type eventMsg Event
type doneMsg struct{}

// New returns a Bubble Tea model tracking modules's load progress as events
// arrive on the channel.
func New(title string, modules []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 60

	items := make([]moduleItem, len(modules))
	index := make(map[string]int, len(modules))
	for i, m := range modules {
		items[i] = moduleItem{module: m, status: StatusQueued}
		index[m] = i
	}
	return &model{title: title, events: events, sp: sp, prog: prog, items: items, index: index, width: 70}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.sp.Tick, m.listen())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		if idx, ok := m.index[msg.Module]; ok {
			m.items[idx].status = msg.Status
		}
		return m, m.listen()
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		next, cmd := m.prog.Update(msg)
		m.prog = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true)
	header := m.title
	if m.done {
		header = "done: " + header
	} else {
		header = m.sp.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	done := 0
	for _, it := range m.items {
		fmt.Fprintf(&b, "  %10s %s\n", it.status.label(), it.module)
		if it.status == StatusDone || it.status == StatusError {
			done++
		}
	}
	b.WriteString("\n")
	ratio := 0.0
	if len(m.items) > 0 {
		ratio = float64(done) / float64(len(m.items))
	}
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.ViewAs(ratio))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *model) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}
