package profile

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/store"
)

type mockStudentRepo struct {
	avatars map[string]string
	err     error
}

func (m *mockStudentRepo) Ensure(context.Context, string) (*store.Student, error) { return nil, nil }
func (m *mockStudentRepo) Get(context.Context, string) (*store.Student, error) {
	return nil, store.ErrNotFound
}
func (m *mockStudentRepo) SetAvatar(_ context.Context, id, avatar string) error {
	if m.err != nil {
		return m.err
	}
	m.avatars[id] = avatar
	return nil
}
func (m *mockStudentRepo) SetRole(context.Context, string, string) error { return nil }
func (m *mockStudentRepo) List(context.Context) ([]store.Student, error) { return nil, nil }

func TestProfile_SaveAvatar(t *testing.T) {
	repo := &mockStudentRepo{avatars: map[string]string{}}
	student := &store.Student{ID: "s1", FullName: "Ana", AvatarURL: store.Avatars[0], Role: store.RoleStudent}
	var scr screen.Screen = New(repo, student)

	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	scr, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected save command")
	}
	scr.Update(cmd())

	if repo.avatars["s1"] != store.Avatars[1] {
		t.Errorf("saved avatar = %q", repo.avatars["s1"])
	}
	if student.AvatarURL != store.Avatars[1] {
		t.Errorf("student avatar = %q", student.AvatarURL)
	}
}

func TestProfile_WrapsAround(t *testing.T) {
	student := &store.Student{ID: "s1", AvatarURL: store.Avatars[0]}
	s := New(&mockStudentRepo{avatars: map[string]string{}}, student)
	var scr screen.Screen = s

	scr.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.selected != len(store.Avatars)-1 {
		t.Errorf("selected = %d", s.selected)
	}
}

func TestProfile_SaveError(t *testing.T) {
	repo := &mockStudentRepo{avatars: map[string]string{}, err: errors.New("disk full")}
	student := &store.Student{ID: "s1", AvatarURL: store.Avatars[0]}
	s := New(repo, student)
	var scr screen.Screen = s

	scr.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr.Update(cmd())

	if student.AvatarURL != store.Avatars[0] {
		t.Error("avatar changed despite save error")
	}
	if s.status == "" {
		t.Error("expected error status")
	}
}
