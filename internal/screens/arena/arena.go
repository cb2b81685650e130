// Package arena implements the pet battle mini-game screen.
package arena

import (
	"errors"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/arena"
	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/ui/components"
	"github.com/abhisek/speakup/internal/ui/layout"
	"github.com/abhisek/speakup/internal/ui/theme"
)

// logLines is how many battle log lines stay on screen.
const logLines = 6

var attackKeys = map[string]arena.Attack{
	"f": arena.Fire,
	"w": arena.Water,
	"e": arena.Earth,
}

var attackIcons = map[arena.Attack]string{
	arena.Fire:  "🔥",
	arena.Water: "💧",
	arena.Earth: "🌱",
}

// ArenaScreen lets the learner pick a pet and trade attacks with a random
// enemy.
type ArenaScreen struct {
	rng    arena.Intn
	game   *arena.Game
	pets   components.Choice
	attack int // highlighted attack button
	notice string
}

var _ screen.Screen = (*ArenaScreen)(nil)
var _ screen.KeyHintProvider = (*ArenaScreen)(nil)

// New creates an arena screen. A nil rng uses a fresh random source.
func New(rng arena.Intn) *ArenaScreen {
	s := &ArenaScreen{rng: rng}
	s.reset()
	return s
}

func (s *ArenaScreen) reset() {
	s.game = arena.NewGame(s.rng)
	names := make([]string, len(arena.Pets))
	for i, p := range arena.Pets {
		names[i] = string(p)
	}
	s.pets = components.NewChoice("Choose your pet", names)
	s.attack = 0
	s.notice = ""
}

func (s *ArenaScreen) Init() tea.Cmd {
	return nil
}

func (s *ArenaScreen) Title() string {
	return "Pet Arena"
}

func (s *ArenaScreen) KeyHints() []layout.KeyHint {
	if s.game.PlayerPet == "" {
		return []layout.KeyHint{
			{Key: "1-3", Description: "Pick"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "F/W/E", Description: "Attack"},
		{Key: "←→", Description: "Choose"},
		{Key: "N", Description: "New game"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ArenaScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.game.PlayerPet == "" {
		if key == "enter" {
			s.selectPet()
			return s, nil
		}
		s.pets, _ = s.pets.Update(kmsg)
		return s, nil
	}

	switch key {
	case "n":
		s.reset()
	case "left", "h":
		if s.attack > 0 {
			s.attack--
		}
	case "right", "l":
		if s.attack < len(arena.Attacks)-1 {
			s.attack++
		}
	case "enter":
		s.play(arena.Attacks[s.attack])
	default:
		if a, ok := attackKeys[key]; ok {
			s.play(a)
		}
	}
	return s, nil
}

func (s *ArenaScreen) selectPet() {
	if err := arena.SelectPet(s.game, s.pets.Value()); err != nil {
		if errors.Is(err, arena.ErrNoPetSelected) {
			s.notice = "Select a pet first!"
		}
		return
	}
	s.notice = ""
	slog.Debug("arena pet selected", "player", s.game.PlayerPet, "enemy", s.game.EnemyPet)
}

func (s *ArenaScreen) play(a arena.Attack) {
	if _, err := arena.PlayAttack(s.game, a); err != nil {
		s.notice = err.Error()
	}
}

func (s *ArenaScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("PET ARENA"))

	if s.game.PlayerPet == "" {
		sections = append(sections, components.ArcadeCard(s.pets.View(), cw))
	} else {
		sections = append(sections, s.renderMatchup(cw), s.renderAttacks(cw), s.renderLog(cw))
	}
	if s.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (s *ArenaScreen) renderMatchup(cw int) string {
	you := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(strings.ToUpper(string(s.game.PlayerPet)))
	enemy := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(strings.ToUpper(string(s.game.EnemyPet)))
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render("Your pet " + you + "   vs   " + enemy + " enemy pet")
}

func (s *ArenaScreen) renderAttacks(cw int) string {
	buttons := make([]string, len(arena.Attacks))
	for i, a := range arena.Attacks {
		buttons[i] = components.ArcadeButton(attackIcons[a]+" "+string(a), components.FocusState(i == s.attack), 14)
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}

func (s *ArenaScreen) renderLog(cw int) string {
	lines := s.game.Log
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	if len(lines) == 0 {
		return theme.Hint.Render("Pick an attack to start the battle.")
	}
	return lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(strings.Join(lines, "\n"))
}
