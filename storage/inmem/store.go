package inmemdb

import (
	"github.com/trezcool/mentorhub/core/lesson"
	"github.com/trezcool/mentorhub/core/material"
	"github.com/trezcool/mentorhub/core/message"
	"github.com/trezcool/mentorhub/core/notification"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/stats"
	"github.com/trezcool/mentorhub/core/user"
	"github.com/trezcool/mentorhub/core/workspace"
)

// Store exposes the repositories of a DB.
type Store struct {
	db *DB
}

var _ workspace.Store = (*Store)(nil)

func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// OpenSeededStore is a workspace.Opener.
func OpenSeededStore() workspace.Store {
	return NewStore(OpenSeeded())
}

func (s *Store) Students() user.Repository              { return NewStudentRepository(s.db) }
func (s *Store) Users() user.Repository                 { return NewUserRepository(s.db) }
func (s *Store) Programs() program.Repository           { return NewProgramRepository(s.db) }
func (s *Store) Lessons() lesson.Repository             { return NewLessonRepository(s.db) }
func (s *Store) Materials() material.Repository         { return NewMaterialRepository(s.db) }
func (s *Store) Notifications() notification.Repository { return NewNotificationRepository(s.db) }
func (s *Store) Messages() message.Repository           { return NewMessageRepository(s.db) }
func (s *Store) Stats() stats.Repository                { return NewStatsRepository(s.db) }
