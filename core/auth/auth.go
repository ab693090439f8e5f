// Package auth authenticates users against a mock identity provider and persists
// the authenticated user in a client-side session Store.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/user"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no session")
	ErrPasswordMismatch   = core.NewValidationError(
		errors.New("passwords do not match"),
		core.FieldError{Field: "password_confirm", Error: "passwords do not match"},
	)
	ErrInvalidRole = core.NewValidationError(
		errors.New("invalid role"),
		core.FieldError{Field: "role", Error: "role must be one of mentor or student"},
	)
)

// mentorMarker in an email grants the mentor role at login.
const mentorMarker = "mentor"

type (
	// Session is the authenticated state of one client.
	Session struct {
		ID   string
		User user.User
	}

	// Store persists the Session of one client under a single well-known key.
	Store interface {
		// Load returns ErrNoSession when nothing is persisted.
		Load() (Session, error)
		Save(sess Session) error
		Clear() error
	}

	Options struct {
		SuperAdminEmail string
		LoginDelay      time.Duration
	}

	Registration struct {
		Name            string    `json:"name" validate:"notblank"`
		Email           string    `json:"email" validate:"notblank"`
		Password        string    `json:"password" validate:"notblank"`
		PasswordConfirm string    `json:"password_confirm" validate:"notblank"`
		Role            user.Role `json:"role"`
	}

	// ProfileUpdate merges its non-empty fields into the session user.
	ProfileUpdate struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	Gateway struct {
		opts     Options
		validate *validator.Validate
	}
)

func NewGateway(opts Options, validate *validator.Validate) *Gateway {
	return &Gateway{opts: opts, validate: validate}
}

// DeriveRole maps an email to a role: the super admin email is an exact match,
// any email containing "mentor" is a mentor, everyone else is a student.
func DeriveRole(email, superAdminEmail string) user.Role {
	switch {
	case email == superAdminEmail:
		return user.RoleSuperAdmin
	case strings.Contains(email, mentorMarker):
		return user.RoleMentor
	default:
		return user.RoleStudent
	}
}

// Login authenticates any non-empty credentials and persists the resulting session.
func (gw *Gateway) Login(ctx context.Context, st Store, email, password string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}
	if err := gw.wait(ctx); err != nil {
		return Session{}, err
	}

	sess := Session{ID: core.NewID(), User: gw.identify(email)}
	if err := st.Save(sess); err != nil {
		return Session{}, errors.Wrap(err, "saving session")
	}
	return sess, nil
}

// Register creates a fresh user and persists the resulting session.
func (gw *Gateway) Register(ctx context.Context, st Store, reg Registration) (Session, error) {
	if err := core.Validate(gw.validate, reg); err != nil {
		return Session{}, err
	}
	if reg.Password != reg.PasswordConfirm {
		return Session{}, ErrPasswordMismatch
	}
	role := reg.Role
	switch role {
	case "":
		role = user.RoleStudent
	case user.RoleStudent, user.RoleMentor:
	default:
		return Session{}, ErrInvalidRole
	}
	if err := gw.wait(ctx); err != nil {
		return Session{}, err
	}

	usr := user.User{
		ID:       core.NewID(),
		Name:     core.CleanString(reg.Name),
		Email:    core.CleanString(reg.Email),
		Role:     role,
		JoinDate: core.Today(),
		Level:    1,
	}
	usr.EnsurePayload()

	sess := Session{ID: core.NewID(), User: usr}
	if err := st.Save(sess); err != nil {
		return Session{}, errors.Wrap(err, "saving session")
	}
	return sess, nil
}

// Logout clears the persisted session.
func (gw *Gateway) Logout(st Store) error {
	return st.Clear()
}

// CurrentUser returns the persisted session user, if any.
func (gw *Gateway) CurrentUser(st Store) (user.User, bool) {
	sess, err := st.Load()
	if err != nil {
		return user.User{}, false
	}
	return sess.User, true
}

// UpdateProfile merges `upd` into the persisted session user and re-persists it.
func (gw *Gateway) UpdateProfile(st Store, upd ProfileUpdate) (Session, error) {
	sess, err := st.Load()
	if err != nil {
		return Session{}, err
	}
	if name := core.CleanString(upd.Name); name != "" {
		sess.User.Name = name
	}
	if email := core.CleanString(upd.Email); email != "" {
		sess.User.Email = email
	}
	if err = st.Save(sess); err != nil {
		return Session{}, errors.Wrap(err, "saving session")
	}
	return sess, nil
}

// identify fabricates the user behind `email`.
func (gw *Gateway) identify(email string) user.User {
	role := DeriveRole(email, gw.opts.SuperAdminEmail)
	usr := user.User{
		ID:       "1",
		Email:    email,
		Role:     role,
		JoinDate: core.MustParseDate("2024-01-15"),
		Badges: []user.Badge{
			{
				ID:          "1",
				Name:        "First Steps",
				Description: "Completed first program",
				Icon:        "🎯",
				EarnedAt:    core.MustParseDate("2024-02-01"),
			},
			{
				ID:          "2",
				Name:        "Knowledge Seeker",
				Description: "Downloaded 10+ materials",
				Icon:        "📚",
				EarnedAt:    core.MustParseDate("2024-02-15"),
			},
		},
	}
	switch role {
	case user.RoleSuperAdmin:
		usr.Name, usr.Points, usr.Level = "Mirshod Shakirov", 5000, 5
	case user.RoleMentor:
		usr.Name, usr.Points, usr.Level = "John Mentor", 2500, 4
	default:
		usr.Name, usr.Points, usr.Level = "Jane Student", 1250, 3
	}
	usr.EnsurePayload()
	return usr
}

func (gw *Gateway) wait(ctx context.Context) error {
	if gw.opts.LoginDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(gw.opts.LoginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
