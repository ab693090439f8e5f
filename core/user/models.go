package user

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/mentorhub/core"
)

type Role string

// Roles
const (
	RoleSuperAdmin Role = "super_admin"
	RoleMentor     Role = "mentor"
	RoleStudent    Role = "student"
)

var AllRoles = []Role{RoleSuperAdmin, RoleMentor, RoleStudent}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleMentor, RoleStudent:
		return true
	}
	return false
}

// Badge is immutable once earned.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
}

// StudentProfile is the payload carried by users with RoleStudent.
type StudentProfile struct {
	EnrolledPrograms      []string  `json:"enrolled_programs"`
	LastActivity          time.Time `json:"last_activity"`
	TotalLessonsCompleted int       `json:"total_lessons_completed"`
	AverageProgress       int       `json:"average_progress"`
}

// MentorProfile is the payload carried by users with RoleMentor.
type MentorProfile struct {
	Specialization  string `json:"specialization"`
	Bio             string `json:"bio"`
	StudentsCount   int    `json:"students_count"`
	ProgramsCreated int    `json:"programs_created"`
}

// User is a tagged variant: Student is set iff Role is RoleStudent, Mentor iff Role is RoleMentor.
type User struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Avatar       string          `json:"avatar,omitempty"`
	Role         Role            `json:"role"`
	JoinDate     time.Time       `json:"join_date"`
	Points       int             `json:"points"`
	Level        int             `json:"level"`
	Badges       []Badge         `json:"badges"`
	MentorID     string          `json:"mentor_id,omitempty"`
	Student      *StudentProfile `json:"student,omitempty"`
	Mentor       *MentorProfile  `json:"mentor,omitempty"`
	PasswordHash []byte          `json:"-"`
}

func (u User) IsStudent() bool    { return u.Role == RoleStudent }
func (u User) IsMentor() bool     { return u.Role == RoleMentor }
func (u User) IsSuperAdmin() bool { return u.Role == RoleSuperAdmin }

// FirstName is used to greet the user.
func (u User) FirstName() string {
	if fields := strings.Fields(u.Name); len(fields) > 0 {
		return fields[0]
	}
	return u.Name
}

// LevelProgress is the percentage reached towards the next level; a level spans 1000 points.
func (u User) LevelProgress() float64 {
	return float64(u.Points%1000) / 1000 * 100
}

// NextLevelPoints is the number of points left before the next level.
func (u User) NextLevelPoints() int {
	return u.Level*1000 - u.Points
}

// EnsurePayload initialises the role specific payload and drops the one of any other role.
func (u *User) EnsurePayload() {
	switch u.Role {
	case RoleStudent:
		if u.Student == nil {
			u.Student = &StudentProfile{EnrolledPrograms: []string{}, LastActivity: core.NowFunc()}
		}
		u.Mentor = nil
	case RoleMentor:
		if u.Mentor == nil {
			u.Mentor = &MentorProfile{}
		}
		u.Student = nil
	default:
		u.Student = nil
		u.Mentor = nil
	}
	if u.Badges == nil {
		u.Badges = []Badge{}
	}
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

type (
	NewStudent struct {
		Name     string `json:"name" validate:"notblank"`
		Email    string `json:"email" validate:"notblank"`
		Password string `json:"password" validate:"notblank"`
		MentorID string `json:"mentor_id" validate:"notblank"`
	}

	NewMentor struct {
		Name           string `json:"name" validate:"notblank"`
		Email          string `json:"email" validate:"notblank"`
		Password       string `json:"password" validate:"notblank"`
		Specialization string `json:"specialization" validate:"notblank"`
		Bio            string `json:"bio" validate:"notblank"`
	}

	// UpdateUser merges its non-empty fields.
	UpdateUser struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	// QueryFilter applies an AND operation on its fields.
	// Search does a case-insensitive match on one of User.Name or User.Email.
	QueryFilter struct {
		Search string `query:"search"`
		Role   string `query:"role" validate:"omitempty,oneof=all super_admin mentor student"`
	}

	// Counts is the number of users per role in a directory.
	Counts struct {
		All         int `json:"all"`
		Students    int `json:"students"`
		Mentors     int `json:"mentors"`
		SuperAdmins int `json:"super_admins"`
	}
)

func (ns NewStudent) Validate(validate *validator.Validate) error {
	return core.Validate(validate, ns)
}

func (nm NewMentor) Validate(validate *validator.Validate) error {
	return core.Validate(validate, nm)
}

func (f QueryFilter) matches(usr User) bool {
	return core.MatchesSearch(f.Search, usr.Name, usr.Email) && core.MatchesFilter(f.Role, string(usr.Role))
}
