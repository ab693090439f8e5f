package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/user"
	inmemdb "github.com/trezcool/mentorhub/storage/inmem"
	testutil "github.com/trezcool/mentorhub/tests"
)

func newService() *user.Service {
	return user.NewService(inmemdb.NewUserRepository(inmemdb.OpenSeeded()), testutil.NewValidator())
}

func TestUser_levels(t *testing.T) {
	tests := []struct {
		points, level int
		wantProgress  float64
		wantNext      int
	}{
		{points: 1250, level: 3, wantProgress: 25, wantNext: 1750},
		{points: 2500, level: 4, wantProgress: 50, wantNext: 1500},
		{points: 5000, level: 5, wantProgress: 0, wantNext: 0},
		{points: 0, level: 1, wantProgress: 0, wantNext: 1000},
	}
	for _, tt := range tests {
		usr := user.User{Points: tt.points, Level: tt.level}
		assert.Equal(t, tt.wantProgress, usr.LevelProgress())
		assert.Equal(t, tt.wantNext, usr.NextLevelPoints())
	}

	assert.Equal(t, "Dr.", user.User{Name: "Dr. Sarah Johnson"}.FirstName())
}

func TestUser_EnsurePayload(t *testing.T) {
	usr := user.User{Role: user.RoleStudent, Mentor: &user.MentorProfile{}}
	usr.EnsurePayload()
	assert.NotNil(t, usr.Student)
	assert.Nil(t, usr.Mentor)
	assert.Equal(t, []user.Badge{}, usr.Badges)

	usr.Role = user.RoleMentor
	usr.EnsurePayload()
	assert.Nil(t, usr.Student)
	assert.NotNil(t, usr.Mentor)

	usr.Role = user.RoleSuperAdmin
	usr.EnsurePayload()
	assert.Nil(t, usr.Student)
	assert.Nil(t, usr.Mentor)
}

func TestUser_password(t *testing.T) {
	var usr user.User
	require.NoError(t, usr.SetPassword("pwd"))
	assert.NotEqual(t, []byte("pwd"), usr.PasswordHash)
	assert.NoError(t, usr.CheckPassword("pwd"))
	assert.Error(t, usr.CheckPassword("lol"))
}

func TestService_Filter(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  user.QueryFilter
		wantIDs []string
		wantErr bool
	}{
		{name: "all", wantIDs: []string{"2", "3", "4", "5", "6"}},
		{name: "role", filter: user.QueryFilter{Role: "mentor"}, wantIDs: []string{"5", "6"}},
		{name: "search name", filter: user.QueryFilter{Search: "CHEN"}, wantIDs: []string{"3", "6"}},
		{name: "search email", filter: user.QueryFilter{Search: "mentor@"}, wantIDs: []string{"5", "6"}},
		{name: "search & role", filter: user.QueryFilter{Search: "chen", Role: "student"}, wantIDs: []string{"3"}},
		{name: "no match", filter: user.QueryFilter{Search: "zzz"}, wantIDs: []string{}},
		{name: "bad role", filter: user.QueryFilter{Role: "guest"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := svc.Filter(ctx, tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			ids := []string{}
			for _, u := range users {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	students, err := svc.Students(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 3)
}

func TestService_crud(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	testutil.FreezeTime(t, time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC))

	_, err := svc.CreateStudent(ctx, user.NewStudent{Name: "Rory", Email: "rory@example.com", Password: "pwd"})
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, core.ErrRequiredFields, vErr.Err)

	student, err := svc.CreateStudent(ctx, user.NewStudent{Name: " Rory ", Email: " Rory@Example.com", Password: "pwd", MentorID: "5"})
	require.NoError(t, err)
	assert.Equal(t, "Rory", student.Name)
	assert.Equal(t, "rory@example.com", student.Email)
	assert.Equal(t, user.RoleStudent, student.Role)
	assert.Equal(t, "5", student.MentorID)
	assert.Equal(t, 1, student.Level)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), student.JoinDate)
	require.NotNil(t, student.Student)
	assert.Equal(t, []string{}, student.Student.EnrolledPrograms)
	assert.NoError(t, student.CheckPassword("pwd"))

	_, err = svc.CreateMentor(ctx, user.NewMentor{Name: "River", Email: "river@example.com", Password: "pwd", Specialization: "History"})
	require.ErrorAs(t, err, &vErr)

	mentor, err := svc.CreateMentor(ctx, user.NewMentor{Name: "River", Email: "river@example.com", Password: "pwd", Specialization: "History", Bio: "Spoilers."})
	require.NoError(t, err)
	assert.Equal(t, user.RoleMentor, mentor.Role)
	assert.Nil(t, mentor.Student)
	assert.Equal(t, "History", mentor.Mentor.Specialization)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.Counts{All: 7, Students: 4, Mentors: 3}, counts)

	updated, err := svc.Update(ctx, student.ID, user.UpdateUser{Email: "RORY.WILLIAMS@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Rory", updated.Name)
	assert.Equal(t, "rory.williams@example.com", updated.Email)

	_, err = svc.Update(ctx, "lol", user.UpdateUser{Name: "x"})
	assert.Equal(t, user.ErrNotFound, err)

	err = svc.Delete(ctx, mentor.ID, mentor.ID)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, user.ErrDeleteSelf, vErr.Err)

	require.NoError(t, svc.Delete(ctx, "1", mentor.ID))
	assert.Equal(t, user.ErrNotFound, svc.Delete(ctx, "1", mentor.ID))
	_, err = svc.GetByID(ctx, mentor.ID)
	assert.True(t, core.IsNotFound(err))
}
