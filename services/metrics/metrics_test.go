package metricsvc

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mentorhub/core/material"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/user"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ObserveRequest("/programs/:id", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest("/programs/:id", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("unmatched", http.MethodGet, http.StatusNotFound, time.Millisecond)
	m.LoggedIn(user.RoleMentor)
	m.Registered(user.RoleStudent)
	m.LessonCompleted(program.Program{ID: "1"}, program.Lesson{ID: "3"})
	m.MessageSent()
	m.MessageSent()
	require.NoError(t, m.Downloads().Fetch(context.Background(), material.Material{Category: "Planning"}))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/programs/:id", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", http.MethodGet, "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("mentor")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues("student")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lessonsCompleted.WithLabelValues("1")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.messagesSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.downloads.WithLabelValues("Planning")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.latency))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	workspaces := 3
	m.TrackWorkspaces(func() int { return workspaces })
	m.MessageSent()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "mentorhub_workspaces 3")
	assert.Contains(t, string(body), "mentorhub_messages_sent_total 1")
	assert.Contains(t, string(body), "go_goroutines")

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	// registries are per instance
	other := New()
	assert.Zero(t, testutil.ToFloat64(other.messagesSent))
}
