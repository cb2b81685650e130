package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	lessonsTable       = "lessons"
	studentsTable      = "students"
	progressTable      = "student_progress"
	attemptEventsTable = "attempt_events"
	sessionEventsTable = "session_events"
)

var (
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "type", Type: field.TypeString, Default: "pronunciation"},
		{Name: "difficulty", Type: field.TypeString, Default: "easy"},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "content", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       lessonsTable,
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "lesson_order_index", Unique: false, Columns: []*schema.Column{LessonsColumns[5]}},
		},
	}

	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString, Unique: true},
		{Name: "avatar_url", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeString, Default: "student"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       studentsTable,
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
	}

	// StudentProgressColumns holds the columns for the "student_progress" table.
	StudentProgressColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "pronunciation_score", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentProgressTable holds the schema information for the "student_progress" table.
	StudentProgressTable = &schema.Table{
		Name:       progressTable,
		Columns:    StudentProgressColumns,
		PrimaryKey: []*schema.Column{StudentProgressColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentprogress_student_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{StudentProgressColumns[1], StudentProgressColumns[2]},
			},
		},
	}

	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "word_index", Type: field.TypeInt},
		{Name: "word", Type: field.TypeString},
		{Name: "transcript", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "similarity", Type: field.TypeFloat64, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       attemptEventsTable,
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "attemptevent_timestamp", Columns: []*schema.Column{AttemptEventsColumns[2]}},
			{Name: "attemptevent_session_id", Columns: []*schema.Column{AttemptEventsColumns[3]}},
		},
	}

	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "words", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       sessionEventsTable,
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_timestamp", Columns: []*schema.Column{SessionEventsColumns[2]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonsTable,
		StudentsTable,
		StudentProgressTable,
		AttemptEventsTable,
		SessionEventsTable,
	}
)
