package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speakup/internal/lessons"
	"github.com/abhisek/speakup/internal/router"
	"github.com/abhisek/speakup/internal/screen"
	arenascreen "github.com/abhisek/speakup/internal/screens/arena"
	"github.com/abhisek/speakup/internal/screens/picker"
	"github.com/abhisek/speakup/internal/screens/practice"
	"github.com/abhisek/speakup/internal/store"
)

type mockLessonRepo struct{}

func (mockLessonRepo) Get(context.Context, string) (*lessons.Lesson, error) {
	return nil, store.ErrNotFound
}
func (mockLessonRepo) ListActive(context.Context) ([]lessons.Lesson, error) {
	return lessons.Builtin(), nil
}
func (mockLessonRepo) List(context.Context) ([]lessons.Lesson, error) { return nil, nil }
func (mockLessonRepo) Upsert(context.Context, *lessons.Lesson) error  { return nil }

type mockProgressRepo struct {
	records []store.ProgressRecord
}

func (m *mockProgressRepo) Upsert(context.Context, store.ProgressRecord) error { return nil }
func (m *mockProgressRepo) Get(context.Context, string, string) (*store.ProgressRecord, error) {
	return nil, store.ErrNotFound
}
func (m *mockProgressRepo) ListForStudent(context.Context, string) ([]store.ProgressRecord, error) {
	return m.records, nil
}
func (m *mockProgressRepo) Summaries(context.Context) ([]store.ProgressSummary, error) {
	return nil, nil
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	records := []store.ProgressRecord{
		{LessonID: "a", Score: 100, Completed: true, CompletedAt: now.Add(-48 * time.Hour)},
		{LessonID: "b", Score: 75, Completed: true, CompletedAt: now.Add(-time.Hour)},
		{LessonID: "c", Score: 10},
	}
	st := computeStats(records, 4, now)

	if st.completed != 2 || st.total != 4 {
		t.Errorf("completed/total = %d/%d", st.completed, st.total)
	}
	if st.average != 88 {
		t.Errorf("average = %d, want 88", st.average)
	}
	if !st.completedToday {
		t.Error("expected completedToday")
	}
	if got := pickMascot(st, true); got != MascotCelebrating {
		t.Errorf("mascot = %d", got)
	}
	if got := pickMascot(st, false); got != MascotAlert {
		t.Errorf("mascot without mic = %d", got)
	}
}

func TestHome_LoadStats(t *testing.T) {
	progress := &mockProgressRepo{records: []store.ProgressRecord{{LessonID: "animals-1", Score: 60, Completed: true}}}
	h := New(Deps{Practice: practice.Deps{Lessons: mockLessonRepo{}, Progress: progress, StudentID: "s1"}})

	var scr screen.Screen = h
	scr.Update(h.Init()())
	if h.stats.completed != 1 || h.stats.total != len(lessons.Builtin()) || h.stats.average != 60 {
		t.Errorf("stats = %+v", h.stats)
	}
	if h.View(120, 40) == "" {
		t.Error("expected a view")
	}
}

func TestHome_MenuGating(t *testing.T) {
	student := &store.Student{ID: "s1", Role: store.RoleStudent}
	h := New(Deps{Student: student})

	if !h.menu.Items[3].Disabled {
		t.Error("class report should be disabled for students")
	}
	if !h.menu.Items[2].Disabled {
		t.Error("profile needs a student repo")
	}

	teacher := &store.Student{ID: "t1", Role: store.RoleTeacher}
	if New(Deps{Student: teacher}).menu.Items[3].Disabled {
		t.Error("class report should be enabled for teachers")
	}
}

func TestHome_PracticeOpensPicker(t *testing.T) {
	h := New(Deps{Practice: practice.Deps{Lessons: mockLessonRepo{}}})
	var scr screen.Screen = h

	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*picker.LessonsScreen); !ok {
		t.Errorf("expected lesson picker, got %T", push.Screen)
	}
}

func TestHome_Shortcuts(t *testing.T) {
	h := New(Deps{})
	var scr screen.Screen = h

	_, cmd := scr.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("expected push command for the arena shortcut")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*arenascreen.ArenaScreen); !ok {
		t.Errorf("expected arena screen, got %T", push.Screen)
	}
	if h.menu.Selected != 1 {
		t.Errorf("shortcut should move the selection, got %d", h.menu.Selected)
	}

	// Disabled items ignore their shortcut.
	if _, cmd := scr.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("class report shortcut should do nothing for students")
	}
}
