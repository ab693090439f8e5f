// Package workspace groups the view controllers of one session.
// Each workspace owns a private copy of the seed data: mutations made by one
// session, or by one view, never reach another.
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/dashboard"
	"github.com/trezcool/mentorhub/core/lesson"
	"github.com/trezcool/mentorhub/core/material"
	"github.com/trezcool/mentorhub/core/message"
	"github.com/trezcool/mentorhub/core/notification"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/stats"
	"github.com/trezcool/mentorhub/core/user"
)

type (
	// Store opens the repositories a workspace works on.
	Store interface {
		Students() user.Repository
		Users() user.Repository
		Programs() program.Repository
		Lessons() lesson.Repository
		Materials() material.Repository
		Notifications() notification.Repository
		Messages() message.Repository
		Stats() stats.Repository
	}

	// Opener returns a freshly seeded Store.
	Opener func() Store

	Deps struct {
		Open     Opener
		Validate *validator.Validate
		Fetcher  material.Fetcher
		Logger   core.Logger
		// OnLessonCompleted is called whenever a program lesson gets completed.
		OnLessonCompleted program.LessonCompletedHook
	}

	Workspace struct {
		Students      *user.Service // a mentor's students
		Users         *user.Service // the admin user directory
		Programs      *program.Service
		Lessons       *lesson.Service
		Materials     *material.Service
		Notifications *notification.Service
		Messages      *message.Service
		Stats         *stats.Service
		Dashboard     *dashboard.Service

		lastSeen time.Time
	}
)

// New returns a Workspace over freshly seeded data.
func New(deps Deps) *Workspace {
	views := deps.Open()
	// the dashboard, platform stats and message directory read the seeds as published
	snapshot := deps.Open()

	progs := program.NewService(views.Programs(), deps.Validate)
	if deps.OnLessonCompleted != nil {
		progs.OnLessonCompleted(deps.OnLessonCompleted)
	}
	snapshotProgs := program.NewService(snapshot.Programs(), deps.Validate)
	statsSvc := stats.NewService(snapshot.Stats())

	titles := func(ctx context.Context, programID string) (string, bool) {
		prog, err := snapshotProgs.GetByID(ctx, programID)
		if err != nil {
			return "", false
		}
		return prog.Title, true
	}

	return &Workspace{
		Students:      user.NewService(views.Students(), deps.Validate),
		Users:         user.NewService(views.Users(), deps.Validate),
		Programs:      progs,
		Lessons:       lesson.NewService(views.Lessons(), deps.Validate, titles),
		Materials:     material.NewService(views.Materials(), deps.Validate, deps.Fetcher, deps.Logger),
		Notifications: notification.NewService(views.Notifications(), deps.Validate),
		Messages:      message.NewService(views.Messages(), user.NewService(snapshot.Users(), deps.Validate), deps.Validate),
		Stats:         statsSvc,
		Dashboard: dashboard.NewService(
			snapshotProgs,
			notification.NewService(snapshot.Notifications(), deps.Validate),
			statsSvc,
		),
		lastSeen: core.NowFunc(),
	}
}

// Registry keeps one Workspace per session id.
type Registry struct {
	deps       Deps
	mutex      sync.Mutex
	workspaces map[string]*Workspace
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps, workspaces: make(map[string]*Workspace)}
}

// Get returns the workspace of session `sid`, creating it on first use.
func (r *Registry) Get(sid string) *Workspace {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ws, ok := r.workspaces[sid]
	if !ok {
		ws = New(r.deps)
		r.workspaces[sid] = ws
	}
	ws.lastSeen = core.NowFunc()
	return ws
}

// Drop forgets the workspace of session `sid`.
func (r *Registry) Drop(sid string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.workspaces, sid)
}

func (r *Registry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.workspaces)
}

// Sweep drops the workspaces idle for longer than `idle` and returns how many it dropped.
func (r *Registry) Sweep(idle time.Duration) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	deadline := core.NowFunc().Add(-idle)
	var n int
	for sid, ws := range r.workspaces {
		if ws.lastSeen.Before(deadline) {
			delete(r.workspaces, sid)
			n++
		}
	}
	return n
}

// Run sweeps idle workspaces every `interval` until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, idle time.Duration, logger core.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(idle); n > 0 && logger != nil {
				logger.Debug("workspaces evicted", map[string]interface{}{"count": n})
			}
		}
	}
}
