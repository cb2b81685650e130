package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuSkipsDisabled(t *testing.T) {
	var pressed string
	m := NewMenu([]MenuItem{
		{Label: "Locked", Disabled: true},
		{Label: "Animals", Action: func() tea.Cmd { pressed = "animals"; return nil }},
		{Label: "Locked too", Disabled: true},
		{Label: "Food", Action: func() tea.Cmd { pressed = "food"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("expected down to skip disabled item, got %d", m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != "food" {
		t.Errorf("expected food action, got %q", pressed)
	}
}

func TestChoiceNumberKeys(t *testing.T) {
	c := NewChoice("Pick a pet", []string{"Hipodoge", "Capipepo", "Ratigueya"})
	if c.Value() != "" {
		t.Fatalf("expected no value before choosing, got %q", c.Value())
	}

	c, _ = c.Update(keyPress('2'))
	if c.Value() != "Capipepo" {
		t.Errorf("expected Capipepo, got %q", c.Value())
	}

	// Out of range keys are ignored.
	c, _ = c.Update(keyPress('9'))
	if c.Value() != "Capipepo" {
		t.Errorf("expected Capipepo to stay chosen, got %q", c.Value())
	}
}

func TestTextInputWordsOnly(t *testing.T) {
	ti := NewTextInput("", true, 20)
	for _, r := range "ca7t" {
		ti, _ = ti.Update(keyPress(r))
	}
	if ti.Value() != "cat" {
		t.Errorf("expected digits dropped, got %q", ti.Value())
	}
}

func TestButtonDisabledIgnoresEnter(t *testing.T) {
	pressed := false
	b := NewButton("Speak", ButtonDisabled, func() tea.Cmd { pressed = true; return nil })
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed {
		t.Error("disabled button should not fire")
	}
	if b.Enabled() {
		t.Error("disabled button reports enabled")
	}
}

func TestStepBarLabel(t *testing.T) {
	bar := NewStepBar("Words", 2, 5, 40)
	if !strings.Contains(bar.View(), "2/5") {
		t.Errorf("expected step count in %q", bar.View())
	}
}

func TestMenuShortcut(t *testing.T) {
	var pressed string
	m := NewMenu([]MenuItem{
		{Label: "Practice", Shortcut: "p", Action: func() tea.Cmd { pressed = "practice"; return nil }},
		{Label: "Report", Shortcut: "r", Disabled: true, Action: func() tea.Cmd { pressed = "report"; return nil }},
		{Label: "Exit", Shortcut: "q", Action: func() tea.Cmd { pressed = "exit"; return nil }},
	})

	m, _ = m.Update(keyPress('Q'))
	if pressed != "exit" || m.Selected != 2 {
		t.Errorf("pressed=%q selected=%d, want exit at 2", pressed, m.Selected)
	}

	pressed = ""
	m, _ = m.Update(keyPress('r'))
	if pressed != "" || m.Selected != 2 {
		t.Errorf("disabled shortcut fired: pressed=%q selected=%d", pressed, m.Selected)
	}
}

func TestMenuAllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}, {Label: "B", Disabled: true}})
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || m.Selected != 0 {
		t.Errorf("expected nothing to happen, selected=%d", m.Selected)
	}
}
