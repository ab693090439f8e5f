package program

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mentorhub/core"
)

type Status string

// Statuses
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

type LessonType string

// Lesson types
const (
	LessonVideo    LessonType = "video"
	LessonDocument LessonType = "document"
	LessonExercise LessonType = "exercise"
)

type Lesson struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Completed   bool       `json:"completed"`
	Type        LessonType `json:"type"`
	Content     string     `json:"content,omitempty"`
	VideoURL    string     `json:"video_url,omitempty"`
	DocumentURL string     `json:"document_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Program owns its lessons.
// Invariant: Progress == round(100 * completed / total) and Status == StatusCompleted iff Progress == 100.
type Program struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Mentor      string    `json:"mentor"`
	Duration    string    `json:"duration"`
	Progress    int       `json:"progress"`
	Status      Status    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Lessons     []Lesson  `json:"lessons"`
}

// CompletedLessons returns the number of completed lessons.
func (p Program) CompletedLessons() int {
	var n int
	for _, l := range p.Lessons {
		if l.Completed {
			n++
		}
	}
	return n
}

// NextLesson returns the index of the first incomplete lesson, or -1.
func (p Program) NextLesson() int {
	for i, l := range p.Lessons {
		if !l.Completed {
			return i
		}
	}
	return -1
}

// Recompute restores the progress/status invariant after a lesson mutation.
// Falling below 100% reverts a completed program to active; a program without lessons has no progress.
func (p *Program) Recompute() {
	total := len(p.Lessons)
	if total == 0 {
		p.Progress = 0
	} else {
		p.Progress = int(math.Round(100 * float64(p.CompletedLessons()) / float64(total)))
	}
	switch {
	case p.Progress == 100:
		p.Status = StatusCompleted
	case p.Status == StatusCompleted:
		p.Status = StatusActive
	}
}

func (p Program) copy() Program {
	lessons := make([]Lesson, len(p.Lessons))
	copy(lessons, p.Lessons)
	p.Lessons = lessons
	return p
}

type (
	// NewLesson holds the lesson form; Title, Description and Duration are required.
	NewLesson struct {
		Title       string     `json:"title" validate:"notblank"`
		Description string     `json:"description" validate:"notblank"`
		Duration    string     `json:"duration" validate:"notblank"`
		Type        LessonType `json:"type" validate:"omitempty,oneof=video document exercise"`
		Content     string     `json:"content"`
		VideoURL    string     `json:"video_url"`
		DocumentURL string     `json:"document_url"`
	}

	// QueryFilter filters programs by status; "" or "all" disables it.
	QueryFilter struct {
		Status string `query:"status" validate:"omitempty,oneof=all active completed pending"`
	}

	StatusCounts struct {
		All       int `json:"all"`
		Active    int `json:"active"`
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
	}
)

func (nl NewLesson) Validate(validate *validator.Validate) error {
	return core.Validate(validate, nl)
}

// Build returns a new Lesson from the form, with a fresh id and timestamps.
func (nl NewLesson) Build() Lesson {
	now := core.NowFunc()
	typ := nl.Type
	if typ == "" {
		typ = LessonVideo
	}
	return Lesson{
		ID:          core.NewID(),
		Title:       core.CleanString(nl.Title),
		Description: core.CleanString(nl.Description),
		Duration:    core.CleanString(nl.Duration),
		Type:        typ,
		Content:     nl.Content,
		VideoURL:    core.CleanString(nl.VideoURL),
		DocumentURL: core.CleanString(nl.DocumentURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply replaces the editable fields of `l` with the form's and bumps UpdatedAt.
func (nl NewLesson) Apply(l Lesson) Lesson {
	l.Title = core.CleanString(nl.Title)
	l.Description = core.CleanString(nl.Description)
	l.Duration = core.CleanString(nl.Duration)
	if nl.Type != "" {
		l.Type = nl.Type
	}
	l.Content = nl.Content
	l.VideoURL = core.CleanString(nl.VideoURL)
	l.DocumentURL = core.CleanString(nl.DocumentURL)
	l.UpdatedAt = core.NowFunc()
	return l
}
