package program

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
)

var (
	// errors
	ErrNotFound            = core.NewNotFoundError("program")
	ErrLessonNotFound      = core.NewNotFoundError("lesson")
	ErrAllLessonsCompleted = errors.New("all lessons completed")
)

type (
	Repository interface {
		QueryAllPrograms(ctx context.Context) ([]Program, error)
		GetProgramByID(ctx context.Context, id string) (Program, error)
		UpdateProgram(ctx context.Context, prog Program) (Program, error)
	}

	// LessonCompletedHook is notified whenever a lesson gets completed.
	LessonCompletedHook func(prog Program, lesson Lesson)

	Service struct {
		repo        Repository
		validate    *validator.Validate
		onCompleted LessonCompletedHook
		mutex       sync.Mutex // serializes lesson mutations
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

// OnLessonCompleted registers a hook called after a lesson is marked as completed.
func (svc *Service) OnLessonCompleted(hook LessonCompletedHook) {
	svc.onCompleted = hook
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Program, error) {
	if err := svc.validate.Struct(filter); err != nil {
		return nil, err
	}
	all, err := svc.repo.QueryAllPrograms(ctx)
	if err != nil {
		return nil, err
	}
	progs := make([]Program, 0, len(all))
	for _, prog := range all {
		if core.MatchesFilter(filter.Status, string(prog.Status)) {
			progs = append(progs, prog)
		}
	}
	return progs, nil
}

func (svc *Service) Counts(ctx context.Context) (StatusCounts, error) {
	all, err := svc.repo.QueryAllPrograms(ctx)
	if err != nil {
		return StatusCounts{}, err
	}
	counts := StatusCounts{All: len(all)}
	for _, prog := range all {
		switch prog.Status {
		case StatusActive:
			counts.Active++
		case StatusCompleted:
			counts.Completed++
		case StatusPending:
			counts.Pending++
		}
	}
	return counts, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Program, error) {
	return svc.repo.GetProgramByID(ctx, id)
}

// CompleteLesson marks the lesson as completed; completing an already completed lesson is a no-op.
func (svc *Service) CompleteLesson(ctx context.Context, programID, lessonID string) (Program, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()
	return svc.setLesson(ctx, programID, lessonID, func(bool) bool { return true })
}

// ToggleLesson flips the completion flag of the lesson.
func (svc *Service) ToggleLesson(ctx context.Context, programID, lessonID string) (Program, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()
	return svc.setLesson(ctx, programID, lessonID, func(done bool) bool { return !done })
}

// Continue completes the first incomplete lesson of the program and returns it.
func (svc *Service) Continue(ctx context.Context, programID string) (Program, Lesson, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	prog, err := svc.repo.GetProgramByID(ctx, programID)
	if err != nil {
		return Program{}, Lesson{}, err
	}
	idx := prog.NextLesson()
	if idx < 0 {
		return prog, Lesson{}, ErrAllLessonsCompleted
	}
	prog, err = svc.setLesson(ctx, programID, prog.Lessons[idx].ID, func(bool) bool { return true })
	if err != nil {
		return Program{}, Lesson{}, err
	}
	return prog, prog.Lessons[idx], nil
}

// AddLesson appends a new lesson to the program.
func (svc *Service) AddLesson(ctx context.Context, programID string, nl NewLesson) (Program, Lesson, error) {
	if err := nl.Validate(svc.validate); err != nil {
		return Program{}, Lesson{}, err
	}

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	prog, err := svc.repo.GetProgramByID(ctx, programID)
	if err != nil {
		return Program{}, Lesson{}, err
	}
	lesson := nl.Build()
	prog = prog.copy()
	prog.Lessons = append(prog.Lessons, lesson)
	prog.Recompute()
	if prog, err = svc.repo.UpdateProgram(ctx, prog); err != nil {
		return Program{}, Lesson{}, errors.Wrap(err, "updating program")
	}
	return prog, lesson, nil
}

func (svc *Service) setLesson(ctx context.Context, programID, lessonID string, next func(done bool) bool) (Program, error) {
	prog, err := svc.repo.GetProgramByID(ctx, programID)
	if err != nil {
		return Program{}, err
	}
	prog = prog.copy()

	idx := -1
	for i, l := range prog.Lessons {
		if l.ID == lessonID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Program{}, ErrLessonNotFound
	}

	lesson := &prog.Lessons[idx]
	done := next(lesson.Completed)
	if done == lesson.Completed {
		return prog, nil
	}
	lesson.Completed = done
	lesson.UpdatedAt = core.NowFunc()
	prog.Recompute()

	if prog, err = svc.repo.UpdateProgram(ctx, prog); err != nil {
		return Program{}, errors.Wrap(err, "updating program")
	}
	if done && svc.onCompleted != nil {
		svc.onCompleted(prog, prog.Lessons[idx])
	}
	return prog, nil
}
