package program_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/program"
	inmemdb "github.com/trezcool/mentorhub/storage/inmem"
	testutil "github.com/trezcool/mentorhub/tests"
)

func newService() *program.Service {
	return program.NewService(inmemdb.NewProgramRepository(inmemdb.OpenSeeded()), testutil.NewValidator())
}

func TestProgram_Recompute(t *testing.T) {
	lessons := func(done ...bool) []program.Lesson {
		ls := make([]program.Lesson, len(done))
		for i, d := range done {
			ls[i].Completed = d
		}
		return ls
	}

	tests := []struct {
		name         string
		prog         program.Program
		wantProgress int
		wantStatus   program.Status
	}{
		{name: "no lessons", prog: program.Program{Status: program.StatusActive}, wantProgress: 0, wantStatus: program.StatusActive},
		{name: "no lessons completed", prog: program.Program{Status: program.StatusCompleted, Progress: 100}, wantProgress: 0, wantStatus: program.StatusActive},
		{name: "rounds up", prog: program.Program{Status: program.StatusActive, Lessons: lessons(true, true, false)}, wantProgress: 67, wantStatus: program.StatusActive},
		{name: "rounds down", prog: program.Program{Status: program.StatusActive, Lessons: lessons(true, false, false)}, wantProgress: 33, wantStatus: program.StatusActive},
		{name: "half", prog: program.Program{Status: program.StatusPending, Lessons: lessons(true, false)}, wantProgress: 50, wantStatus: program.StatusPending},
		{name: "completes", prog: program.Program{Status: program.StatusPending, Lessons: lessons(true, true)}, wantProgress: 100, wantStatus: program.StatusCompleted},
		{name: "reverts", prog: program.Program{Status: program.StatusCompleted, Progress: 100, Lessons: lessons(true, false)}, wantProgress: 50, wantStatus: program.StatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := tt.prog
			prog.Recompute()
			assert.Equal(t, tt.wantProgress, prog.Progress)
			assert.Equal(t, tt.wantStatus, prog.Status)
		})
	}
}

func TestService_Filter(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tests := []struct {
		status  string
		wantIDs []string
		wantErr bool
	}{
		{status: "", wantIDs: []string{"1", "2", "3"}},
		{status: "all", wantIDs: []string{"1", "2", "3"}},
		{status: "active", wantIDs: []string{"1", "2"}},
		{status: "pending", wantIDs: []string{"3"}},
		{status: "completed", wantIDs: []string{}},
		{status: "lol", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			progs, err := svc.Filter(ctx, program.QueryFilter{Status: tt.status})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			ids := []string{}
			for _, p := range progs {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, program.StatusCounts{All: 3, Active: 2, Completed: 0, Pending: 1}, counts)
}

func TestService_lessons(t *testing.T) {
	ctx := context.Background()

	t.Run("continue", func(t *testing.T) {
		svc := newService()
		var hooked []string
		svc.OnLessonCompleted(func(prog program.Program, l program.Lesson) { hooked = append(hooked, prog.ID+":"+l.ID) })

		prog, l, err := svc.Continue(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "3", l.ID)
		assert.True(t, l.Completed)
		assert.Equal(t, 100, prog.Progress)
		assert.Equal(t, program.StatusCompleted, prog.Status)

		_, _, err = svc.Continue(ctx, "1")
		assert.Equal(t, program.ErrAllLessonsCompleted, err)

		_, _, err = svc.Continue(ctx, "lol")
		assert.True(t, core.IsNotFound(err))
		assert.Equal(t, []string{"1:3"}, hooked)
	})

	t.Run("complete & toggle", func(t *testing.T) {
		svc := newService()
		var hooked int
		svc.OnLessonCompleted(func(program.Program, program.Lesson) { hooked++ })

		// completing a completed lesson is a no-op: the seeded figure stands
		prog, err := svc.CompleteLesson(ctx, "2", "4")
		require.NoError(t, err)
		assert.Equal(t, 30, prog.Progress)
		assert.Zero(t, hooked)

		prog, err = svc.ToggleLesson(ctx, "2", "5")
		require.NoError(t, err)
		assert.Equal(t, 100, prog.Progress)
		assert.Equal(t, program.StatusCompleted, prog.Status)
		assert.Equal(t, 1, hooked)

		prog, err = svc.ToggleLesson(ctx, "2", "4")
		require.NoError(t, err)
		assert.Equal(t, 50, prog.Progress)
		assert.Equal(t, program.StatusActive, prog.Status)
		assert.False(t, prog.Lessons[0].Completed)
		assert.Equal(t, 1, hooked)

		_, err = svc.ToggleLesson(ctx, "2", "1")
		assert.Equal(t, program.ErrLessonNotFound, err)
		_, err = svc.CompleteLesson(ctx, "lol", "1")
		assert.Equal(t, program.ErrNotFound, err)

		stored, err := svc.GetByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, 50, stored.Progress)
	})

	t.Run("add", func(t *testing.T) {
		svc := newService()

		_, _, err := svc.AddLesson(ctx, "1", program.NewLesson{Title: "Pitching"})
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, core.ErrRequiredFields, vErr.Err)

		_, _, err = svc.AddLesson(ctx, "1", program.NewLesson{Title: "Pitching", Description: "Pitch it", Duration: "30 min", Type: "podcast"})
		assert.Error(t, err)

		nl := program.NewLesson{Title: " Pitching ", Description: "Pitch it", Duration: "30 min"}
		_, _, err = svc.AddLesson(ctx, "lol", nl)
		assert.Equal(t, program.ErrNotFound, err)

		prog, l, err := svc.AddLesson(ctx, "1", nl)
		require.NoError(t, err)
		assert.Equal(t, "Pitching", l.Title)
		assert.Equal(t, program.LessonVideo, l.Type)
		assert.False(t, l.Completed)
		assert.NotEmpty(t, l.ID)
		require.Len(t, prog.Lessons, 4)
		assert.Equal(t, l, prog.Lessons[3])
		assert.Equal(t, 50, prog.Progress)
	})
}

func TestNewLesson_Apply(t *testing.T) {
	l := program.Lesson{ID: "1", Title: "Old", Type: program.LessonExercise, Completed: true}
	nl := program.NewLesson{Title: " New ", Description: "D", Duration: "5 min"}

	got := nl.Apply(l)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, program.LessonExercise, got.Type)
	assert.True(t, got.Completed)
	assert.False(t, got.UpdatedAt.IsZero())
}
