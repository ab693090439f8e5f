package lesson_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/lesson"
	"github.com/trezcool/mentorhub/core/program"
	inmemdb "github.com/trezcool/mentorhub/storage/inmem"
	testutil "github.com/trezcool/mentorhub/tests"
)

func newService() *lesson.Service {
	titles := map[string]string{"1": "Startup Fundamentals", "3": "Financial Planning for Startups"}
	return lesson.NewService(
		inmemdb.NewLessonRepository(inmemdb.OpenSeeded()),
		testutil.NewValidator(),
		func(_ context.Context, id string) (string, bool) {
			title, ok := titles[id]
			return title, ok
		},
	)
}

func TestFlatten(t *testing.T) {
	lessons := lesson.Flatten([]program.Program{
		{ID: "1", Title: "A", Lessons: []program.Lesson{{ID: "1"}, {ID: "2"}}},
		{ID: "2", Title: "B"},
		{ID: "3", Title: "C", Lessons: []program.Lesson{{ID: "3"}}},
	})
	require.Len(t, lessons, 3)
	assert.Equal(t, "A", lessons[1].ProgramTitle)
	assert.Equal(t, "3", lessons[2].ProgramID)
}

func TestService_Filter(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  lesson.QueryFilter
		wantIDs []string
		wantErr bool
	}{
		{name: "all", wantIDs: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "type", filter: lesson.QueryFilter{Type: "video"}, wantIDs: []string{"1", "3", "4", "6"}},
		{name: "search title", filter: lesson.QueryFilter{Search: "mvp"}, wantIDs: []string{"3"}},
		{name: "search description", filter: lesson.QueryFilter{Search: "Entrepreneurs"}, wantIDs: []string{"6"}},
		{name: "search & type", filter: lesson.QueryFilter{Search: "market", Type: "document"}, wantIDs: []string{"5"}},
		{name: "bad type", filter: lesson.QueryFilter{Type: "podcast"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lessons, err := svc.Filter(ctx, tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			ids := []string{}
			for _, l := range lessons {
				ids = append(ids, l.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_crud(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	form := program.NewLesson{Title: "Pricing", Description: "Pricing strategies", Duration: "20 min"}

	_, err := svc.Create(ctx, lesson.NewLesson{NewLesson: program.NewLesson{Title: "Pricing"}})
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, core.ErrRequiredFields, vErr.Err)
	lessons, err := svc.Filter(ctx, lesson.QueryFilter{})
	require.NoError(t, err)
	assert.Len(t, lessons, 6)

	_, err = svc.Create(ctx, lesson.NewLesson{NewLesson: form, ProgramID: "2"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, lesson.ErrUnknownProgram, vErr.Err)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "program_id", vErr.Fields[0].Field)

	floating, err := svc.Create(ctx, lesson.NewLesson{NewLesson: form})
	require.NoError(t, err)
	assert.Empty(t, floating.ProgramID)
	assert.Empty(t, floating.ProgramTitle)

	attached, err := svc.Update(ctx, floating.ID, lesson.NewLesson{NewLesson: form, ProgramID: "3"})
	require.NoError(t, err)
	assert.Equal(t, "3", attached.ProgramID)
	assert.Equal(t, "Financial Planning for Startups", attached.ProgramTitle)

	// an empty program id keeps the lesson where it is
	form.Title = "Pricing 101"
	updated, err := svc.Update(ctx, floating.ID, lesson.NewLesson{NewLesson: form})
	require.NoError(t, err)
	assert.Equal(t, "3", updated.ProgramID)
	assert.Equal(t, "Pricing 101", updated.Title)

	got, err := svc.GetByID(ctx, floating.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = svc.Update(ctx, floating.ID, lesson.NewLesson{NewLesson: form, ProgramID: "1", Detach: true})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, lesson.ErrDetachConflict, vErr.Err)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "detach", vErr.Fields[0].Field)

	detached, err := svc.Update(ctx, floating.ID, lesson.NewLesson{NewLesson: form, Detach: true})
	require.NoError(t, err)
	assert.Empty(t, detached.ProgramID)
	assert.Empty(t, detached.ProgramTitle)
	assert.Equal(t, "Pricing 101", detached.Title)

	_, err = svc.Update(ctx, "lol", lesson.NewLesson{NewLesson: form})
	assert.Equal(t, lesson.ErrNotFound, err)

	require.NoError(t, svc.Delete(ctx, floating.ID))
	assert.Equal(t, lesson.ErrNotFound, svc.Delete(ctx, floating.ID))
}
