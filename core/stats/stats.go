package stats

import (
	"context"
	"strconv"
)

type (
	// PlatformStats is a read-only snapshot of the platform counters.
	PlatformStats struct {
		TotalUsers     int `json:"total_users"`
		TotalMentors   int `json:"total_mentors"`
		TotalStudents  int `json:"total_students"`
		TotalPrograms  int `json:"total_programs"`
		TotalLessons   int `json:"total_lessons"`
		ActiveUsers    int `json:"active_users"`
		CompletionRate int `json:"completion_rate"`
	}

	Card struct {
		Name   string `json:"name"`
		Value  string `json:"value"`
		Change string `json:"change"`
	}

	Activity struct {
		Action string `json:"action"`
		User   string `json:"user"`
		Time   string `json:"time"`
		Type   string `json:"type"`
	}

	Report struct {
		Stats          PlatformStats `json:"stats"`
		Cards          []Card        `json:"cards"`
		RecentActivity []Activity    `json:"recent_activity"`
	}

	Repository interface {
		GetPlatformStats(ctx context.Context) (PlatformStats, error)
		QueryRecentActivity(ctx context.Context) ([]Activity, error)
	}

	Service struct {
		repo Repository
	}
)

// GrowthRate is not tracked; the platform reports a fixed figure.
const GrowthRate = "24%"

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Get(ctx context.Context) (PlatformStats, error) {
	return svc.repo.GetPlatformStats(ctx)
}

func (svc *Service) Report(ctx context.Context) (Report, error) {
	st, err := svc.repo.GetPlatformStats(ctx)
	if err != nil {
		return Report{}, err
	}
	activity, err := svc.repo.QueryRecentActivity(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{Stats: st, Cards: st.Cards(), RecentActivity: activity}, nil
}

// Cards renders the stats as dashboard cards.
func (st PlatformStats) Cards() []Card {
	itoa := strconv.Itoa
	return []Card{
		{Name: "Total Users", Value: itoa(st.TotalUsers), Change: "+12%"},
		{Name: "Active Mentors", Value: itoa(st.TotalMentors), Change: "+8%"},
		{Name: "Students", Value: itoa(st.TotalStudents), Change: "+15%"},
		{Name: "Programs", Value: itoa(st.TotalPrograms), Change: "+5%"},
		{Name: "Total Lessons", Value: itoa(st.TotalLessons), Change: "+23%"},
		{Name: "Active Users", Value: itoa(st.ActiveUsers), Change: "+7%"},
		{Name: "Completion Rate", Value: itoa(st.CompletionRate) + "%", Change: "+3%"},
		{Name: "Growth Rate", Value: GrowthRate, Change: "+2%"},
	}
}
