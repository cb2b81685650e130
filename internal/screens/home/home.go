package home

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speakup/internal/arena"
	"github.com/abhisek/speakup/internal/router"
	"github.com/abhisek/speakup/internal/screen"
	arenascreen "github.com/abhisek/speakup/internal/screens/arena"
	"github.com/abhisek/speakup/internal/screens/picker"
	"github.com/abhisek/speakup/internal/screens/practice"
	"github.com/abhisek/speakup/internal/screens/profile"
	"github.com/abhisek/speakup/internal/screens/report"
	"github.com/abhisek/speakup/internal/store"
	"github.com/abhisek/speakup/internal/ui/components"
	"github.com/abhisek/speakup/internal/ui/layout"
)

// Deps holds what the home screen and the screens it opens need.
type Deps struct {
	Practice practice.Deps
	Students store.StudentRepo
	Student  *store.Student

	// ArenaRand drives the arena's enemy draws; nil uses a random source.
	ArenaRand arena.Intn
}

type stats struct {
	completed      int
	total          int
	average        int
	completedToday bool
}

type statsLoadedMsg struct {
	Stats stats
	Err   error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	stats stats
	now   func() time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps, now: time.Now}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	isTeacher := deps.Student != nil && deps.Student.Role == store.RoleTeacher
	items := []components.MenuItem{
		{Label: "PRACTICE", Shortcut: "p", Action: push(func() screen.Screen {
			return picker.New(deps.Practice)
		})},
		{Label: "PET ARENA", Shortcut: "a", Action: push(func() screen.Screen {
			return arenascreen.New(deps.ArenaRand)
		})},
		{Label: "MY PROFILE", Shortcut: "m", Disabled: deps.Students == nil || deps.Student == nil, Action: push(func() screen.Screen {
			return profile.New(deps.Students, deps.Student)
		})},
		{Label: "CLASS REPORT", Shortcut: "r", Disabled: !isTeacher, Action: push(func() screen.Screen {
			return report.New(deps.Practice.Progress)
		})},
		{Label: "EXIT", Shortcut: "q", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume refreshes the stats after a lesson or profile change.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	deps, now := h.deps.Practice, h.now()
	return func() tea.Msg {
		ctx := context.Background()
		var st stats
		if deps.Lessons != nil {
			active, err := deps.Lessons.ListActive(ctx)
			if err != nil {
				return statsLoadedMsg{Err: err}
			}
			st.total = len(active)
		}
		if deps.Progress == nil || deps.StudentID == "" {
			return statsLoadedMsg{Stats: st}
		}
		records, err := deps.Progress.ListForStudent(ctx, deps.StudentID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Stats: computeStats(records, st.total, now)}
	}
}

// computeStats summarises a student's progress records.
func computeStats(records []store.ProgressRecord, total int, now time.Time) stats {
	st := stats{total: total}
	sum := 0
	for _, r := range records {
		if !r.Completed {
			continue
		}
		st.completed++
		sum += r.Score
		if now.Sub(r.CompletedAt) < 24*time.Hour {
			st.completedToday = true
		}
	}
	if st.completed > 0 {
		st.average = int(math.Round(float64(sum) / float64(st.completed)))
	}
	return st
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			slog.Warn("load home stats failed", "error", msg.Err)
			return h, nil
		}
		h.stats = msg.Stats
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "P/A/M", Description: "Jump"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) micReady() bool {
	p := h.deps.Practice
	return p.Keyboard || (p.Recognizer != nil && p.Recognizer.Available())
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back the header and footer boxes.
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	avatar := ""
	if h.deps.Student != nil {
		avatar = h.deps.Student.AvatarURL
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(pickMascot(h.stats, h.micReady()), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, avatar, cw, compact))
	if !h.micReady() {
		sections = append(sections, renderMicBanner(cw))
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Items, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Items, h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
