// Package application holds the interactive terminal prompts that hand a
// loaded table to the user for selection.
package application

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user leaves the prompt without choosing.
var ErrCancelled = errors.New("selection cancelled")

// PageSize is the number of options shown at once.
var PageSize = 10

/* ----------------------------------------
	MODEL
---------------------------------------- */

// selectModel is a filterable single-choice list. Typing narrows the
// options by case-insensitive substring.
type selectModel struct {
	title    string
	options  []string
	filter   string
	visible  []string
	cursor   int
	offset   int
	chosen   string
	canceled bool
}

func newSelectModel(title string, options []string) selectModel {
	m := selectModel{title: title, options: options}
	m.applyFilter()
	return m
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.canceled = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.visible) == 0 {
			return m, nil
		}
		m.chosen = m.visible[m.cursor]
		return m, tea.Quit
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyPgUp:
		m.move(-PageSize)
	case tea.KeyPgDown:
		m.move(PageSize)
	case tea.KeyBackspace:
		if m.filter != "" {
			r := []rune(m.filter)
			m.filter = string(r[:len(r)-1])
			m.applyFilter()
		}
	case tea.KeySpace:
		m.filter += " "
		m.applyFilter()
	case tea.KeyRunes:
		m.filter += string(key.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.chosen != "" || m.canceled {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "? %s %s\n", m.title, m.filter)

	if len(m.visible) == 0 {
		b.WriteString("  (no matches)\n")
	}

	end := min(m.offset+PageSize, len(m.visible))
	for i := m.offset; i < end; i++ {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		b.WriteString(prefix + m.visible[i] + "\n")
	}

	b.WriteString("[↑↓ to move, enter to select, type to filter, esc to cancel]\n")
	return b.String()
}

func (m *selectModel) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.visible)-1, m.cursor+delta))
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+PageSize {
		m.offset = m.cursor - PageSize + 1
	}
}

func (m *selectModel) applyFilter() {
	needle := strings.ToLower(m.filter)
	m.visible = m.visible[:0]
	for _, opt := range m.options {
		if strings.Contains(strings.ToLower(opt), needle) {
			m.visible = append(m.visible, opt)
		}
	}
	m.cursor = 0
	m.offset = 0
}

/* ----------------------------------------
	ENTRY POINT
---------------------------------------- */

// Select shows options under title and returns the chosen one.
// Returns ErrCancelled if the user quits.
func Select(title string, options []string, opts ...tea.ProgramOption) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("nothing to select for %q", title)
	}

	final, err := tea.NewProgram(newSelectModel(title, options), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}

	m := final.(selectModel)
	if m.canceled || m.chosen == "" {
		return "", ErrCancelled
	}
	return m.chosen, nil
}

// SelectFrom is Select reading keys from in and drawing to out.
func SelectFrom(in io.Reader, out io.Writer, title string, options []string) (string, error) {
	return Select(title, options, tea.WithInput(in), tea.WithOutput(out))
}
