package report

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/store"
)

type mockProgressRepo struct {
	summaries []store.ProgressSummary
	records   map[string][]store.ProgressRecord
	listCalls int
}

func (m *mockProgressRepo) Upsert(context.Context, store.ProgressRecord) error { return nil }
func (m *mockProgressRepo) Get(context.Context, string, string) (*store.ProgressRecord, error) {
	return nil, store.ErrNotFound
}
func (m *mockProgressRepo) ListForStudent(_ context.Context, id string) ([]store.ProgressRecord, error) {
	m.listCalls++
	return m.records[id], nil
}
func (m *mockProgressRepo) Summaries(context.Context) ([]store.ProgressSummary, error) {
	return m.summaries, nil
}

func testRepo() *mockProgressRepo {
	return &mockProgressRepo{
		summaries: []store.ProgressSummary{
			{Student: store.Student{ID: "s1", FullName: "Ana", AvatarURL: "🦊"}, LessonsCompleted: 2, AverageScore: 90,
				LastActivity: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
			{Student: store.Student{ID: "s2", FullName: "Bo", AvatarURL: "🐼"}},
		},
		records: map[string][]store.ProgressRecord{
			"s1": {{StudentID: "s1", LessonID: "animals-1", Score: 80, Completed: true}},
		},
	}
}

func TestReport_ListsStudents(t *testing.T) {
	s := New(testRepo())
	var scr screen.Screen = s
	scr.Update(s.Init()())

	view := s.View(100, 30)
	for _, want := range []string{"Ana", "Bo", "avg  90.0%", "never"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestReport_ExpandStudent(t *testing.T) {
	repo := testRepo()
	s := New(repo)
	var scr screen.Screen = s
	scr.Update(s.Init()())

	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected detail load")
	}
	scr.Update(cmd())
	if !strings.Contains(s.View(100, 30), "animals-1") {
		t.Error("expected lesson detail")
	}

	// Collapse and expand again without another query.
	scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || repo.listCalls != 1 {
		t.Errorf("expected cached detail, calls=%d", repo.listCalls)
	}
}

func TestReport_Empty(t *testing.T) {
	s := New(&mockProgressRepo{})
	var scr screen.Screen = s
	scr.Update(s.Init()())
	if !strings.Contains(s.View(100, 30), "No students") {
		t.Error("expected empty message")
	}
}
