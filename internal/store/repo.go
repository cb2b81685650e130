package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/speakup/internal/lessons"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Student roles.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// ProgressRecord is the per-(student, lesson) result of a completed session.
type ProgressRecord struct {
	StudentID          string
	LessonID           string
	Score              int // 0-100
	PronunciationScore int // 0-100
	Completed          bool
	CompletedAt        time.Time
	UpdatedAt          time.Time
}

// Student is a learner (or teacher) profile.
type Student struct {
	ID        string
	FullName  string
	AvatarURL string // an emoji glyph
	Role      string
	CreatedAt time.Time
}

// ProgressSummary aggregates one student's progress for the teacher report.
type ProgressSummary struct {
	Student          Student
	LessonsCompleted int
	AverageScore     float64
	LastActivity     time.Time
}

// AttemptEventData captures a single classified capture.
type AttemptEventData struct {
	SessionID  string
	StudentID  string
	LessonID   string
	WordIndex  int
	Word       string
	Transcript string
	Correct    bool
	Similarity float64
}

// AttemptEvent is a stored attempt with its ordering metadata.
type AttemptEvent struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// SessionEventData captures session lifecycle actions.
type SessionEventData struct {
	SessionID    string
	StudentID    string
	LessonID     string
	Action       string // "start", "complete" or "quit"
	Score        int
	Words        int
	DurationSecs int
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // timestamp >= From
}

// LessonRepo is the lesson source.
type LessonRepo interface {
	// Get returns the lesson with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*lessons.Lesson, error)

	// ListActive returns active lessons ordered by order_index.
	ListActive(ctx context.Context) ([]lessons.Lesson, error)

	// List returns every lesson ordered by order_index.
	List(ctx context.Context) ([]lessons.Lesson, error)

	// Upsert inserts or replaces a lesson by id.
	Upsert(ctx context.Context, l *lessons.Lesson) error
}

// ProgressRepo is the progress sink.
type ProgressRepo interface {
	// Upsert writes rec keyed by (StudentID, LessonID). Last write wins.
	Upsert(ctx context.Context, rec ProgressRecord) error

	// Get returns the record for a student and lesson, or ErrNotFound.
	Get(ctx context.Context, studentID, lessonID string) (*ProgressRecord, error)

	// ListForStudent returns all records for a student.
	ListForStudent(ctx context.Context, studentID string) ([]ProgressRecord, error)

	// Summaries aggregates progress for every student with the student role.
	Summaries(ctx context.Context) ([]ProgressSummary, error)
}

// StudentRepo manages local profiles.
type StudentRepo interface {
	// Ensure returns the student with fullName, creating it if needed.
	Ensure(ctx context.Context, fullName string) (*Student, error)

	// Get returns the student with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Student, error)

	// SetAvatar updates the avatar glyph.
	SetAvatar(ctx context.Context, id, avatar string) error

	// SetRole updates the role.
	SetRole(ctx context.Context, id, role string) error

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]Student, error)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a classified capture.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSessionEvent records a session lifecycle action.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryAttempts returns attempts for a session ordered by sequence.
	QueryAttempts(ctx context.Context, sessionID string, opts QueryOpts) ([]AttemptEvent, error)
}
