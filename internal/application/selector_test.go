package application

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m selectModel, keys ...tea.KeyMsg) selectModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(selectModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel_Navigate(t *testing.T) {
	m := newSelectModel("Pick", []string{"Alpha", "Beta", "Gamma"})

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped at last option)", m.cursor)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.chosen != "Beta" {
		t.Errorf("chosen = %q, want %q", m.chosen, "Beta")
	}
}

func TestSelectModel_Filter(t *testing.T) {
	m := newSelectModel("Pick", []string{"Iron Ingot", "Copper Ingot", "Iron Plate"})

	m = press(m, runes("iron"), tea.KeyMsg{Type: tea.KeySpace}, runes("p"))
	if len(m.visible) != 1 || m.visible[0] != "Iron Plate" {
		t.Fatalf("visible = %v, want [Iron Plate]", m.visible)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.filter != "iron" {
		t.Errorf("filter = %q, want %q", m.filter, "iron")
	}
	if len(m.visible) != 2 {
		t.Errorf("visible = %v, want two iron options", m.visible)
	}
}

func TestSelectModel_EnterWithNoMatches(t *testing.T) {
	m := newSelectModel("Pick", []string{"Alpha"})
	m = press(m, runes("zzz"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.chosen != "" {
		t.Errorf("chosen = %q, want nothing", m.chosen)
	}
	if m.View() == "" {
		t.Error("View() is empty while prompt is still open")
	}
}

func TestSelectModel_Cancel(t *testing.T) {
	m := newSelectModel("Pick", []string{"Alpha"})
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.canceled {
		t.Error("canceled = false after esc")
	}
}

func TestSelectModel_Scroll(t *testing.T) {
	opts := make([]string, PageSize*2)
	for i := range opts {
		opts[i] = string(rune('a' + i))
	}
	m := newSelectModel("Pick", opts)

	m = press(m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != PageSize+1 {
		t.Fatalf("cursor = %d, want %d", m.cursor, PageSize+1)
	}
	if m.offset != 2 {
		t.Errorf("offset = %d, want 2", m.offset)
	}
}

func TestSelect_NoOptions(t *testing.T) {
	_, err := Select("Pick", nil)
	if err == nil {
		t.Fatal("Select() with no options should fail")
	}
	if errors.Is(err, ErrCancelled) {
		t.Error("empty option list reported as cancellation")
	}
}

func TestSelectFrom(t *testing.T) {
	var out bytes.Buffer
	got, err := SelectFrom(strings.NewReader("bet\r"), &out, "Pick", []string{"Alpha", "Beta", "Gamma"})
	if err != nil {
		t.Fatalf("SelectFrom() error = %v", err)
	}
	if got != "Beta" {
		t.Errorf("SelectFrom() = %q, want %q", got, "Beta")
	}
}

func TestSelectFrom_CtrlC(t *testing.T) {
	var out bytes.Buffer
	_, err := SelectFrom(strings.NewReader("\x03"), &out, "Pick", []string{"Alpha"})
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("SelectFrom() error = %v, want ErrCancelled", err)
	}
}
