package inmemdb

import (
	"context"

	"github.com/trezcool/mentorhub/core/lesson"
)

type lessonRepository struct {
	db *table[lesson.Lesson]
}

var _ lesson.Repository = (*lessonRepository)(nil)

func NewLessonRepository(db *DB) lesson.Repository {
	return &lessonRepository{db: db.lessons}
}

func (repo *lessonRepository) QueryAllLessons(_ context.Context) ([]lesson.Lesson, error) {
	return repo.db.all(), nil
}

func (repo *lessonRepository) GetLessonByID(_ context.Context, id string) (lesson.Lesson, error) {
	if l, ok := repo.db.get(id); ok {
		return l, nil
	}
	return lesson.Lesson{}, lesson.ErrNotFound
}

func (repo *lessonRepository) CreateLesson(_ context.Context, l lesson.Lesson) (lesson.Lesson, error) {
	return repo.db.append(l), nil
}

func (repo *lessonRepository) UpdateLesson(_ context.Context, l lesson.Lesson) (lesson.Lesson, error) {
	if !repo.db.replace(l) {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	return l, nil
}

func (repo *lessonRepository) DeleteLessonByID(_ context.Context, id string) error {
	if !repo.db.remove(id) {
		return lesson.ErrNotFound
	}
	return nil
}
