package inmemdb

import (
	"context"

	"github.com/trezcool/mentorhub/core/user"
)

type userRepository struct {
	db *table[user.User]
}

var _ user.Repository = (*userRepository)(nil)

// NewStudentRepository returns the directory of a mentor's students.
func NewStudentRepository(db *DB) user.Repository {
	return &userRepository{db: db.students}
}

// NewUserRepository returns the admin user directory.
func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.users}
}

func (repo *userRepository) QueryAllUsers(_ context.Context) ([]user.User, error) {
	return repo.db.all(), nil
}

func (repo *userRepository) GetUserByID(_ context.Context, id string) (user.User, error) {
	if usr, ok := repo.db.get(id); ok {
		return usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	return repo.db.append(usr), nil
}

func (repo *userRepository) UpdateUser(_ context.Context, usr user.User) (user.User, error) {
	if !repo.db.replace(usr) {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo *userRepository) DeleteUserByID(_ context.Context, id string) error {
	if !repo.db.remove(id) {
		return user.ErrNotFound
	}
	return nil
}
