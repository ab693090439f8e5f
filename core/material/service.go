package material

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
)

var ErrNotFound = core.NewNotFoundError("material")

type (
	Repository interface {
		QueryAllMaterials(ctx context.Context) ([]Material, error)
		GetMaterialByID(ctx context.Context, id string) (Material, error)
		UpdateMaterial(ctx context.Context, m Material) (Material, error)
	}

	// Fetcher retrieves the file behind a material. Fetching is best-effort.
	Fetcher interface {
		Fetch(ctx context.Context, m Material) error
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
		fetcher  Fetcher
		logger   core.Logger
		mutex    sync.Mutex
	}
)

// NewService returns a material Service; `fetcher` may be nil.
func NewService(repo Repository, validate *validator.Validate, fetcher Fetcher, logger core.Logger) *Service {
	return &Service{repo: repo, validate: validate, fetcher: fetcher, logger: logger}
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Material, error) {
	if err := svc.validate.Struct(filter); err != nil {
		return nil, err
	}
	all, err := svc.repo.QueryAllMaterials(ctx)
	if err != nil {
		return nil, err
	}
	mats := make([]Material, 0, len(all))
	for _, m := range all {
		if filter.matches(m) {
			mats = append(mats, m)
		}
	}
	return mats, nil
}

// Categories lists the distinct categories in first-seen order.
func (svc *Service) Categories(ctx context.Context) ([]string, error) {
	all, err := svc.repo.QueryAllMaterials(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(all, func(m Material) string { return m.Category }), nil
}

// Types lists the distinct material types in first-seen order.
func (svc *Service) Types(ctx context.Context) ([]string, error) {
	all, err := svc.repo.QueryAllMaterials(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(all, func(m Material) string { return string(m.Type) }), nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Material, error) {
	return svc.repo.GetMaterialByID(ctx, id)
}

// Download increments the download counter of the material and fetches its file.
// Fetch failures are logged, never returned.
func (svc *Service) Download(ctx context.Context, id string) (Material, error) {
	m, err := svc.countDownload(ctx, id)
	if err != nil {
		return Material{}, err
	}

	if svc.fetcher != nil && m.FileURL != "" {
		if err = svc.fetcher.Fetch(ctx, m); err != nil && svc.logger != nil {
			svc.logger.Warn("material fetch failed", errors.Wrapf(err, "fetching %q", m.FileURL))
		}
	}
	return m, nil
}

func (svc *Service) countDownload(ctx context.Context, id string) (Material, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	m, err := svc.repo.GetMaterialByID(ctx, id)
	if err != nil {
		return Material{}, err
	}
	m.Downloads++
	if m, err = svc.repo.UpdateMaterial(ctx, m); err != nil {
		return Material{}, errors.Wrap(err, "updating material")
	}
	return m, nil
}

func distinct(mats []Material, key func(Material) string) []string {
	seen := make(map[string]bool, len(mats))
	vals := make([]string, 0, len(mats))
	for _, m := range mats {
		k := key(m)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		vals = append(vals, k)
	}
	return vals
}
