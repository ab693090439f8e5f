package inmemdb

import (
	"context"

	"github.com/trezcool/mentorhub/core/material"
)

type materialRepository struct {
	db *table[material.Material]
}

var _ material.Repository = (*materialRepository)(nil)

func NewMaterialRepository(db *DB) material.Repository {
	return &materialRepository{db: db.materials}
}

func (repo *materialRepository) QueryAllMaterials(_ context.Context) ([]material.Material, error) {
	return repo.db.all(), nil
}

func (repo *materialRepository) GetMaterialByID(_ context.Context, id string) (material.Material, error) {
	if m, ok := repo.db.get(id); ok {
		return m, nil
	}
	return material.Material{}, material.ErrNotFound
}

func (repo *materialRepository) UpdateMaterial(_ context.Context, m material.Material) (material.Material, error) {
	if !repo.db.replace(m) {
		return material.Material{}, material.ErrNotFound
	}
	return m, nil
}
