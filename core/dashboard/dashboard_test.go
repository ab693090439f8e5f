package dashboard_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mentorhub/core/dashboard"
	"github.com/trezcool/mentorhub/core/notification"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/stats"
	"github.com/trezcool/mentorhub/core/user"
	inmemdb "github.com/trezcool/mentorhub/storage/inmem"
	testutil "github.com/trezcool/mentorhub/tests"
)

func newService() *dashboard.Service {
	db := inmemdb.OpenSeeded()
	validate := testutil.NewValidator()
	return dashboard.NewService(
		program.NewService(inmemdb.NewProgramRepository(db), validate),
		notification.NewService(inmemdb.NewNotificationRepository(db), validate),
		stats.NewService(inmemdb.NewStatsRepository(db)),
	)
}

func TestService_Build(t *testing.T) {
	svc := newService()

	tests := []struct {
		name         string
		usr          user.User
		wantGreeting string
		wantPoints   string
	}{
		{
			name:         "student",
			usr:          user.User{Name: "Jane Student", Points: 1250, Level: 3, Badges: []user.Badge{{ID: "1"}}},
			wantGreeting: "Welcome back, Jane!",
			wantPoints:   "1,250",
		},
		{
			name:         "super admin",
			usr:          user.User{Name: "Mirshod Shakirov", Points: 5000, Level: 5},
			wantGreeting: "Welcome back, Mirshod!",
			wantPoints:   "5,000",
		},
		{
			name:         "fresh user",
			usr:          user.User{Name: "Rory", Level: 1},
			wantGreeting: "Welcome back, Rory!",
			wantPoints:   "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := svc.Build(context.Background(), tt.usr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantGreeting, view.Greeting)
			require.Len(t, view.Cards, 4)
			assert.Equal(t, "2", view.Cards[0].Value)
			assert.Equal(t, tt.wantPoints, view.Cards[1].Value)
			assert.Equal(t, "87%", view.Cards[2].Value)
			assert.Equal(t, "Level up!", view.Cards[3].Change)
			assert.Len(t, view.ActivePrograms, 2)
			assert.Len(t, view.RecentNotifications, dashboard.RecentNotifications)
			assert.NotNil(t, view.Badges)
			assert.Equal(t, tt.usr.Level, view.Level)
		})
	}
}

type failingStats struct{}

func (failingStats) Get(context.Context) (stats.PlatformStats, error) {
	return stats.PlatformStats{}, errors.New("stats unavailable")
}

func TestService_Build_error(t *testing.T) {
	db := inmemdb.OpenSeeded()
	validate := testutil.NewValidator()
	svc := dashboard.NewService(
		program.NewService(inmemdb.NewProgramRepository(db), validate),
		notification.NewService(inmemdb.NewNotificationRepository(db), validate),
		failingStats{},
	)

	_, err := svc.Build(context.Background(), user.User{Name: "Jane"})
	assert.EqualError(t, err, "stats unavailable")
}
