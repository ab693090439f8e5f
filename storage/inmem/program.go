package inmemdb

import (
	"context"

	"github.com/trezcool/mentorhub/core/program"
)

type programRepository struct {
	db *table[program.Program]
}

var _ program.Repository = (*programRepository)(nil)

func NewProgramRepository(db *DB) program.Repository {
	return &programRepository{db: db.programs}
}

func (repo *programRepository) QueryAllPrograms(_ context.Context) ([]program.Program, error) {
	return repo.db.all(), nil
}

func (repo *programRepository) GetProgramByID(_ context.Context, id string) (program.Program, error) {
	if prog, ok := repo.db.get(id); ok {
		return prog, nil
	}
	return program.Program{}, program.ErrNotFound
}

func (repo *programRepository) UpdateProgram(_ context.Context, prog program.Program) (program.Program, error) {
	if !repo.db.replace(prog) {
		return program.Program{}, program.ErrNotFound
	}
	return prog, nil
}
