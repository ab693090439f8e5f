package dashboard

import (
	"context"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/trezcool/mentorhub/core/notification"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/stats"
	"github.com/trezcool/mentorhub/core/user"
)

// RecentNotifications is the number of notifications shown on the dashboard.
const RecentNotifications = 3

var printer = message.NewPrinter(language.English)

type (
	Programs interface {
		Filter(ctx context.Context, filter program.QueryFilter) ([]program.Program, error)
	}

	Notifications interface {
		Recent(ctx context.Context, n int) ([]notification.Notification, error)
	}

	Stats interface {
		Get(ctx context.Context) (stats.PlatformStats, error)
	}

	View struct {
		Greeting            string                      `json:"greeting"`
		Cards               []stats.Card                `json:"cards"`
		ActivePrograms      []program.Program           `json:"active_programs"`
		RecentNotifications []notification.Notification `json:"recent_notifications"`
		Badges              []user.Badge                `json:"badges"`
		Points              int                         `json:"points"`
		Level               int                         `json:"level"`
	}

	Service struct {
		programs      Programs
		notifications Notifications
		stats         Stats
	}
)

func NewService(programs Programs, notifications Notifications, stats Stats) *Service {
	return &Service{programs: programs, notifications: notifications, stats: stats}
}

// Build returns the dashboard of `usr`.
func (svc *Service) Build(ctx context.Context, usr user.User) (View, error) {
	active, err := svc.programs.Filter(ctx, program.QueryFilter{Status: string(program.StatusActive)})
	if err != nil {
		return View{}, err
	}
	notifs, err := svc.notifications.Recent(ctx, RecentNotifications)
	if err != nil {
		return View{}, err
	}
	st, err := svc.stats.Get(ctx)
	if err != nil {
		return View{}, err
	}

	badges := usr.Badges
	if badges == nil {
		badges = []user.Badge{}
	}
	return View{
		Greeting: "Welcome back, " + usr.FirstName() + "!",
		Cards: []stats.Card{
			{Name: "Active Programs", Value: strconv.Itoa(len(active)), Change: "+12%"},
			{Name: "Points Earned", Value: printer.Sprintf("%d", usr.Points), Change: "+23%"},
			{Name: "Completion Rate", Value: strconv.Itoa(st.CompletionRate) + "%", Change: "+5%"},
			{Name: "Current Level", Value: strconv.Itoa(usr.Level), Change: "Level up!"},
		},
		ActivePrograms:      active,
		RecentNotifications: notifs,
		Badges:              badges,
		Points:              usr.Points,
		Level:               usr.Level,
	}, nil
}
