package user

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
)

var (
	// errors
	ErrNotFound   = core.NewNotFoundError("user")
	ErrDeleteSelf = errors.New("you cannot delete your own account")
)

type (
	// Repository is an ordered user directory.
	Repository interface {
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
		CreateUser(ctx context.Context, usr User) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
		DeleteUserByID(ctx context.Context, id string) error
	}

	// Service backs one directory view: a mentor's students or the admin user management.
	Service struct {
		repo     Repository
		validate *validator.Validate
		mutex    sync.Mutex
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]User, error) {
	if err := svc.validate.Struct(filter); err != nil {
		return nil, err
	}
	all, err := svc.repo.QueryAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(all))
	for _, usr := range all {
		if filter.matches(usr) {
			users = append(users, usr)
		}
	}
	return users, nil
}

func (svc *Service) Counts(ctx context.Context) (Counts, error) {
	all, err := svc.repo.QueryAllUsers(ctx)
	if err != nil {
		return Counts{}, err
	}
	counts := Counts{All: len(all)}
	for _, usr := range all {
		switch usr.Role {
		case RoleStudent:
			counts.Students++
		case RoleMentor:
			counts.Mentors++
		case RoleSuperAdmin:
			counts.SuperAdmins++
		}
	}
	return counts, nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

// Students returns the users of the directory that are students.
func (svc *Service) Students(ctx context.Context) ([]User, error) {
	return svc.Filter(ctx, QueryFilter{Role: string(RoleStudent)})
}

func (svc *Service) CreateStudent(ctx context.Context, ns NewStudent) (User, error) {
	if err := ns.Validate(svc.validate); err != nil {
		return User{}, err
	}
	now := core.NowFunc()
	usr := User{
		ID:       core.NewID(),
		Name:     core.CleanString(ns.Name),
		Email:    core.CleanString(ns.Email, true /* lower */),
		Role:     RoleStudent,
		JoinDate: core.Date(now),
		Level:    1,
		Badges:   []Badge{},
		MentorID: ns.MentorID,
		Student: &StudentProfile{
			EnrolledPrograms: []string{},
			LastActivity:     now,
		},
	}
	if err := usr.SetPassword(ns.Password); err != nil {
		return User{}, errors.Wrap(err, "setting password")
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) CreateMentor(ctx context.Context, nm NewMentor) (User, error) {
	if err := nm.Validate(svc.validate); err != nil {
		return User{}, err
	}
	usr := User{
		ID:       core.NewID(),
		Name:     core.CleanString(nm.Name),
		Email:    core.CleanString(nm.Email, true /* lower */),
		Role:     RoleMentor,
		JoinDate: core.Today(),
		Level:    1,
		Badges:   []Badge{},
		Mentor: &MentorProfile{
			Specialization: core.CleanString(nm.Specialization),
			Bio:            core.CleanString(nm.Bio),
		},
	}
	if err := usr.SetPassword(nm.Password); err != nil {
		return User{}, errors.Wrap(err, "setting password")
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) Update(ctx context.Context, id string, uu UpdateUser) (User, error) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	usr, err := svc.repo.GetUserByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if name := core.CleanString(uu.Name); name != "" {
		usr.Name = name
	}
	if email := core.CleanString(uu.Email, true /* lower */); email != "" {
		usr.Email = email
	}
	return svc.repo.UpdateUser(ctx, usr)
}

// Delete removes the user `id`; `actorID` (the requesting user) cannot delete themselves.
func (svc *Service) Delete(ctx context.Context, actorID, id string) error {
	if actorID != "" && actorID == id {
		return core.NewValidationError(ErrDeleteSelf)
	}
	return svc.repo.DeleteUserByID(ctx, id)
}
