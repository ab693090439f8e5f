package lesson

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/program"
)

// Lesson is a lesson of the catalog; it floats when ProgramID is empty.
type Lesson struct {
	program.Lesson
	ProgramID    string `json:"program_id,omitempty"`
	ProgramTitle string `json:"program_title,omitempty"`
}

type (
	// NewLesson is the catalog lesson form; ProgramID is optional.
	// On update an empty ProgramID keeps the lesson where it is and Detach makes it float.
	NewLesson struct {
		program.NewLesson
		ProgramID string `json:"program_id"`
		Detach    bool   `json:"detach"`
	}

	// QueryFilter applies an AND operation on its fields.
	// Search does a case-insensitive match on one of Lesson.Title or Lesson.Description.
	QueryFilter struct {
		Search string `query:"search"`
		Type   string `query:"type" validate:"omitempty,oneof=all video document exercise"`
	}
)

func (nl NewLesson) Validate(validate *validator.Validate) error {
	return nl.NewLesson.Validate(validate)
}

func (f QueryFilter) matches(l Lesson) bool {
	return core.MatchesSearch(f.Search, l.Title, l.Description) && core.MatchesFilter(f.Type, string(l.Type))
}

// Flatten lists the lessons of `progs` in program order, tagged with their program.
func Flatten(progs []program.Program) []Lesson {
	var lessons []Lesson
	for _, prog := range progs {
		for _, l := range prog.Lessons {
			lessons = append(lessons, Lesson{Lesson: l, ProgramID: prog.ID, ProgramTitle: prog.Title})
		}
	}
	return lessons
}
