package lesson

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
)

var (
	// errors
	ErrNotFound       = core.NewNotFoundError("lesson")
	ErrUnknownProgram = errors.New("unknown program")
	ErrDetachConflict = errors.New("cannot detach and attach a lesson at once")
	errUnknownProgram = core.NewValidationError(ErrUnknownProgram, core.FieldError{Field: "program_id", Error: ErrUnknownProgram.Error()})
	errDetachConflict = core.NewValidationError(ErrDetachConflict, core.FieldError{Field: "detach", Error: ErrDetachConflict.Error()})
)

type (
	Repository interface {
		QueryAllLessons(ctx context.Context) ([]Lesson, error)
		GetLessonByID(ctx context.Context, id string) (Lesson, error)
		CreateLesson(ctx context.Context, l Lesson) (Lesson, error)
		UpdateLesson(ctx context.Context, l Lesson) (Lesson, error)
		DeleteLessonByID(ctx context.Context, id string) error
	}

	// ProgramTitles resolves the title of a program from its id.
	ProgramTitles func(ctx context.Context, programID string) (string, bool)

	// Service backs the lesson management view. It owns its own copy of the lessons:
	// program progress is not affected by catalog mutations.
	Service struct {
		repo     Repository
		validate *validator.Validate
		titles   ProgramTitles
		mutex    sync.Mutex
	}
)

func NewService(repo Repository, validate *validator.Validate, titles ProgramTitles) *Service {
	return &Service{repo: repo, validate: validate, titles: titles}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Lesson, error) {
	if err := svc.validate.Struct(filter); err != nil {
		return nil, err
	}
	all, err := svc.repo.QueryAllLessons(ctx)
	if err != nil {
		return nil, err
	}
	lessons := make([]Lesson, 0, len(all))
	for _, l := range all {
		if filter.matches(l) {
			lessons = append(lessons, l)
		}
	}
	return lessons, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Lesson, error) {
	return svc.repo.GetLessonByID(ctx, id)
}

func (svc *Service) Create(ctx context.Context, nl NewLesson) (Lesson, error) {
	if err := nl.Validate(svc.validate); err != nil {
		return Lesson{}, err
	}
	l := Lesson{Lesson: nl.Build()}
	if err := svc.attach(ctx, &l, nl.ProgramID); err != nil {
		return Lesson{}, err
	}
	return svc.repo.CreateLesson(ctx, l)
}

func (svc *Service) Update(ctx context.Context, id string, nl NewLesson) (Lesson, error) {
	if err := nl.Validate(svc.validate); err != nil {
		return Lesson{}, err
	}
	if nl.Detach && nl.ProgramID != "" {
		return Lesson{}, errDetachConflict
	}

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	l, err := svc.repo.GetLessonByID(ctx, id)
	if err != nil {
		return Lesson{}, err
	}
	l.Lesson = nl.Apply(l.Lesson)
	switch {
	case nl.Detach:
		l.ProgramID, l.ProgramTitle = "", ""
	case nl.ProgramID != "" && nl.ProgramID != l.ProgramID:
		if err = svc.attach(ctx, &l, nl.ProgramID); err != nil {
			return Lesson{}, err
		}
	}
	return svc.repo.UpdateLesson(ctx, l)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteLessonByID(ctx, id)
}

func (svc *Service) attach(ctx context.Context, l *Lesson, programID string) error {
	if programID == "" {
		return nil
	}
	title, ok := svc.titles(ctx, programID)
	if !ok {
		return errUnknownProgram
	}
	l.ProgramID = programID
	l.ProgramTitle = title
	return nil
}
