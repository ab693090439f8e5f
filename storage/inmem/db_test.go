package inmemdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/message"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/user"
)

func TestTable(t *testing.T) {
	type row struct {
		id   string
		tags []string
	}
	tbl := newTable(
		func(r row) string { return r.id },
		func(r row) row { r.tags = cloneSlice(r.tags); return r },
		[]row{{id: "1", tags: []string{"a"}}, {id: "2"}},
	)

	t.Run("rows are copies", func(t *testing.T) {
		r, ok := tbl.get("1")
		require.True(t, ok)
		r.tags[0] = "mutated"
		r, _ = tbl.get("1")
		assert.Equal(t, []string{"a"}, r.tags)

		rows := tbl.all()
		rows[0].tags[0] = "mutated"
		assert.Equal(t, "a", tbl.all()[0].tags[0])
	})

	t.Run("order", func(t *testing.T) {
		tbl.append(row{id: "3"})
		tbl.prepend(row{id: "0"})
		var ids []string
		for _, r := range tbl.all() {
			ids = append(ids, r.id)
		}
		assert.Equal(t, []string{"0", "1", "2", "3"}, ids)
	})

	t.Run("replace & remove", func(t *testing.T) {
		assert.True(t, tbl.replace(row{id: "2", tags: []string{"b"}}))
		assert.False(t, tbl.replace(row{id: "lol"}))
		r, _ := tbl.get("2")
		assert.Equal(t, []string{"b"}, r.tags)

		assert.True(t, tbl.remove("2"))
		assert.False(t, tbl.remove("2"))
		_, ok := tbl.get("2")
		assert.False(t, ok)
		assert.Len(t, tbl.all(), 3)
	})
}

func TestCloneSlice(t *testing.T) {
	assert.Nil(t, cloneSlice[int](nil))
	assert.NotNil(t, cloneSlice([]int{}))
	s := []int{1, 2}
	c := cloneSlice(s)
	c[0] = 3
	assert.Equal(t, []int{1, 2}, s)
}

func TestOpenSeeded(t *testing.T) {
	ctx := context.Background()
	store := NewStore(OpenSeeded())

	students, _ := store.Students().QueryAllUsers(ctx)
	users, _ := store.Users().QueryAllUsers(ctx)
	progs, _ := store.Programs().QueryAllPrograms(ctx)
	lessons, _ := store.Lessons().QueryAllLessons(ctx)
	mats, _ := store.Materials().QueryAllMaterials(ctx)
	notifs, _ := store.Notifications().QueryAllNotifications(ctx)
	msgs, _ := store.Messages().QueryAllMessages(ctx)
	st, _ := store.Stats().GetPlatformStats(ctx)
	activity, _ := store.Stats().QueryRecentActivity(ctx)

	assert.Len(t, students, 3)
	assert.Len(t, users, 5)
	assert.Len(t, progs, 3)
	assert.Len(t, lessons, 6)
	assert.Len(t, mats, 6)
	assert.Len(t, notifs, 6)
	assert.Len(t, msgs, 4)
	assert.Equal(t, 523, st.TotalUsers)
	assert.Len(t, activity, 5)

	t.Run("views do not share rows", func(t *testing.T) {
		_, err := store.Students().UpdateUser(ctx, user.User{ID: "2", Name: "Alex J."})
		require.NoError(t, err)
		usr, err := store.Users().GetUserByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "Alex Johnson", usr.Name)

		prog, _ := store.Programs().GetProgramByID(ctx, "1")
		prog.Lessons[0].Title = "mutated"
		_, err = store.Programs().UpdateProgram(ctx, prog)
		require.NoError(t, err)
		l, _ := store.Lessons().GetLessonByID(ctx, "1")
		assert.Equal(t, "Market Research Essentials", l.Title)
	})

	t.Run("seeds are fresh", func(t *testing.T) {
		other := NewStore(OpenSeeded())
		usr, _ := other.Students().GetUserByID(ctx, "2")
		assert.Equal(t, "Alex Johnson", usr.Name)
	})
}

func TestRepositories_notFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Open())

	tests := []struct {
		name string
		fn   func() error
	}{
		{"user get", func() error { _, err := store.Users().GetUserByID(ctx, "1"); return err }},
		{"user update", func() error { _, err := store.Users().UpdateUser(ctx, user.User{ID: "1"}); return err }},
		{"user delete", func() error { return store.Students().DeleteUserByID(ctx, "1") }},
		{"program get", func() error { _, err := store.Programs().GetProgramByID(ctx, "1"); return err }},
		{"program update", func() error { _, err := store.Programs().UpdateProgram(ctx, program.Program{ID: "1"}); return err }},
		{"lesson get", func() error { _, err := store.Lessons().GetLessonByID(ctx, "1"); return err }},
		{"lesson delete", func() error { return store.Lessons().DeleteLessonByID(ctx, "1") }},
		{"material get", func() error { _, err := store.Materials().GetMaterialByID(ctx, "1"); return err }},
		{"notification get", func() error { _, err := store.Notifications().GetNotificationByID(ctx, "1"); return err }},
		{"notification delete", func() error { return store.Notifications().DeleteNotificationByID(ctx, "1") }},
		{"message get", func() error { _, err := store.Messages().GetMessageByID(ctx, "1"); return err }},
		{"message update", func() error { _, err := store.Messages().UpdateMessage(ctx, message.Message{ID: "1"}); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			assert.True(t, core.IsNotFound(err), "got %v", err)
		})
	}
}

func TestMessageRepository_prepend(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(OpenSeeded())

	_, err := repo.PrependMessage(ctx, message.Message{ID: "new"})
	require.NoError(t, err)
	msgs, _ := repo.QueryAllMessages(ctx)
	require.Len(t, msgs, 5)
	assert.Equal(t, "new", msgs[0].ID)
}
