package inmemdb

import (
	"context"

	"github.com/trezcool/mentorhub/core/stats"
)

type statsRepository struct {
	db *DB
}

var _ stats.Repository = (*statsRepository)(nil)

func NewStatsRepository(db *DB) stats.Repository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) GetPlatformStats(_ context.Context) (stats.PlatformStats, error) {
	repo.db.statsMutex.RLock()
	defer repo.db.statsMutex.RUnlock()
	return repo.db.stats, nil
}

func (repo *statsRepository) QueryRecentActivity(_ context.Context) ([]stats.Activity, error) {
	repo.db.statsMutex.RLock()
	defer repo.db.statsMutex.RUnlock()
	return cloneSlice(repo.db.activity), nil
}
