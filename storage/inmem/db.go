// Package inmemdb stores the state of one workspace in memory.
package inmemdb

import (
	"sync"

	"github.com/trezcool/mentorhub/core/lesson"
	"github.com/trezcool/mentorhub/core/material"
	"github.com/trezcool/mentorhub/core/message"
	"github.com/trezcool/mentorhub/core/notification"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/stats"
	"github.com/trezcool/mentorhub/core/user"
	"github.com/trezcool/mentorhub/storage/mockdata"
)

// DB holds one table per view; views never share rows.
type DB struct {
	students      *table[user.User] // a mentor's students
	users         *table[user.User] // the admin user directory
	programs      *table[program.Program]
	lessons       *table[lesson.Lesson]
	materials     *table[material.Material]
	notifications *table[notification.Notification]
	messages      *table[message.Message]

	statsMutex sync.RWMutex
	stats      stats.PlatformStats
	activity   []stats.Activity
}

// Open returns an empty DB.
func Open() *DB {
	return open(nil, nil, nil, nil, nil, nil, nil, stats.PlatformStats{}, nil)
}

// OpenSeeded returns a DB holding a fresh copy of the seed data.
func OpenSeeded() *DB {
	return open(
		mockdata.Students(),
		mockdata.Directory(),
		mockdata.Programs(),
		lesson.Flatten(mockdata.Programs()),
		mockdata.Materials(),
		mockdata.Notifications(),
		mockdata.Messages(),
		mockdata.PlatformStats(),
		mockdata.RecentActivity(),
	)
}

func open(
	students, users []user.User,
	progs []program.Program,
	lessons []lesson.Lesson,
	mats []material.Material,
	notifs []notification.Notification,
	msgs []message.Message,
	st stats.PlatformStats,
	activity []stats.Activity,
) *DB {
	return &DB{
		students:      newTable(userID, cloneUser, students),
		users:         newTable(userID, cloneUser, users),
		programs:      newTable(programID, cloneProgram, progs),
		lessons:       newTable(func(l lesson.Lesson) string { return l.ID }, nil, lessons),
		materials:     newTable(func(m material.Material) string { return m.ID }, nil, mats),
		notifications: newTable(func(n notification.Notification) string { return n.ID }, nil, notifs),
		messages:      newTable(func(m message.Message) string { return m.ID }, nil, msgs),
		stats:         st,
		activity:      cloneSlice(activity),
	}
}

func userID(u user.User) string { return u.ID }

func cloneUser(u user.User) user.User {
	u.Badges = cloneSlice(u.Badges)
	if u.Student != nil {
		s := *u.Student
		s.EnrolledPrograms = cloneSlice(s.EnrolledPrograms)
		u.Student = &s
	}
	if u.Mentor != nil {
		m := *u.Mentor
		u.Mentor = &m
	}
	u.PasswordHash = cloneSlice(u.PasswordHash)
	return u
}

func programID(p program.Program) string { return p.ID }

func cloneProgram(p program.Program) program.Program {
	p.Lessons = cloneSlice(p.Lessons)
	return p
}

// cloneSlice copies s, keeping nil and empty slices apart.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	c := make([]T, len(s))
	copy(c, s)
	return c
}
