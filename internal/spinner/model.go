// Package spinner renders transient fetch progress for one or more data
// categories using bubbletea.
package spinner

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CompletionInfo describes a completed category fetch.
type CompletionInfo struct {
	Category string
	Success  bool
	Error    string
}

// completionMsg is sent to the model when a category fetch completes.
type completionMsg CompletionInfo

type model struct {
	spinner     spinner.Model
	categories  []string
	inflight    []string
	completions map[string]CompletionInfo
	quitting    bool
}

var (
	checkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	crossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func newModel(categories []string) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	all := make([]string, len(categories))
	copy(all, categories)
	inflight := make([]string, len(categories))
	copy(inflight, categories)

	return model{
		spinner:     s,
		categories:  all,
		inflight:    inflight,
		completions: make(map[string]CompletionInfo),
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case completionMsg:
		info := CompletionInfo(msg)

		// Ignore duplicates
		if !m.isInflight(info.Category) {
			return m, nil
		}

		m.completions[info.Category] = info
		m.inflight = removeString(m.inflight, info.Category)

		if len(m.inflight) == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m model) View() string {
	// Transient progress UI, nothing to show once done
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for i, category := range m.categories {
		if i > 0 {
			b.WriteString("\n")
		}
		if c, done := m.completions[category]; done {
			if c.Success {
				b.WriteString(checkStyle.Render("✓"))
			} else {
				b.WriteString(crossStyle.Render("✗"))
			}
			b.WriteString(" ")
			b.WriteString(c.Category)
		} else {
			b.WriteString(m.spinner.View())
			b.WriteString(" ")
			b.WriteString(category)
		}
	}
	return b.String()
}

func (m model) isInflight(category string) bool {
	for _, c := range m.inflight {
		if c == category {
			return true
		}
	}
	return false
}

func removeString(slice []string, s string) []string {
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if item != s {
			result = append(result, item)
		}
	}
	return result
}
