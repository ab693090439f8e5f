package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/user"
	"github.com/trezcool/mentorhub/core/workspace"
)

// directory picks the user service a route group works on.
type directory func(ws *workspace.Workspace) *user.Service

var (
	students directory = func(ws *workspace.Workspace) *user.Service { return ws.Students }
	allUsers directory = func(ws *workspace.Workspace) *user.Service { return ws.Users }
)

type userApi struct {
	policy          *navigation.Policy
	validate        *validator.Validate
	defaultMentorID string
}

func registerUserAPI(pages *echo.Group, deps ServerDeps) {
	api := userApi{
		policy:          deps.Policy,
		validate:        deps.Validate,
		defaultMentorID: deps.Conf.Directory.DefaultMentorID,
	}

	// a mentor's students
	sg := pages.Group(navigation.PathStudents)
	sg.GET("", api.queryStudents)
	sg.POST("", api.createStudent)
	sg.GET("/:id", api.retrieve(students))
	sg.PUT("/:id", api.update(students))
	sg.DELETE("/:id", api.destroy(students))

	// admin user management
	ug := pages.Group(navigation.PathAdminUsers)
	ug.GET("", api.queryUsers)
	ug.POST("", api.createUser)
	ug.GET("/:id", api.retrieve(allUsers))
	ug.PUT("/:id", api.update(allUsers))
	ug.DELETE("/:id", api.destroy(allUsers))
}

// Handlers

func (api *userApi) queryStudents(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	filter := user.QueryFilter{Search: ctx.QueryParam("search")}

	users, err := ws.Students.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "filtering students")
	}
	return renderPage(ctx, api.policy, users)
}

func (api *userApi) createStudent(ctx echo.Context) error {
	ctxUsr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var data user.NewStudent
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}
	// mentors enroll students under themselves
	data.MentorID = ctxUsr.ID

	usr, err := ws.Students.CreateStudent(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: "Student added successfully!", Data: usr})
}

func (api *userApi) queryUsers(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var filter user.QueryFilter
	if err = ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	users, err := ws.Users.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "filtering users")
	}
	counts, err := ws.Users.Counts(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "counting users")
	}
	return renderPage(ctx, api.policy, UsersView{Users: users, Counts: counts})
}

func (api *userApi) createUser(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var data NewUserRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUserRequest")
	}
	if err = core.Validate(api.validate, data); err != nil {
		return err
	}

	var usr user.User
	if data.Role == user.RoleMentor {
		usr, err = ws.Users.CreateMentor(ctx.Request().Context(), user.NewMentor{
			Name:           data.Name,
			Email:          data.Email,
			Password:       data.Password,
			Specialization: data.Specialization,
			Bio:            data.Bio,
		})
	} else {
		mentorID := data.MentorID
		if mentorID == "" {
			mentorID = api.defaultMentorID
		}
		usr, err = ws.Users.CreateStudent(ctx.Request().Context(), user.NewStudent{
			Name:     data.Name,
			Email:    data.Email,
			Password: data.Password,
			MentorID: mentorID,
		})
	}
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: "User created successfully!", Data: usr})
}

func (api *userApi) retrieve(dir directory) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ws, err := getContextWorkspace(ctx)
		if err != nil {
			return err
		}
		usr, err := dir(ws).GetByID(ctx.Request().Context(), ctx.Param("id"))
		if err != nil {
			return errors.Wrap(err, "finding user by ID")
		}
		return renderPage(ctx, api.policy, usr)
	}
}

func (api *userApi) update(dir directory) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ws, err := getContextWorkspace(ctx)
		if err != nil {
			return err
		}
		var data user.UpdateUser
		if err = ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to UpdateUser")
		}

		usr, err := dir(ws).Update(ctx.Request().Context(), ctx.Param("id"), data)
		if err != nil {
			return errors.Wrap(err, "updating user")
		}
		return ctx.JSON(http.StatusOK, SuccessResponse{Success: "User updated successfully!", Data: usr})
	}
}

func (api *userApi) destroy(dir directory) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if err := requireConfirmation(ctx); err != nil {
			return err
		}
		ctxUsr, err := getContextUser(ctx)
		if err != nil {
			return err
		}
		ws, err := getContextWorkspace(ctx)
		if err != nil {
			return err
		}

		if err = dir(ws).Delete(ctx.Request().Context(), ctxUsr.ID, ctx.Param("id")); err != nil {
			return errors.Wrap(err, "deleting user")
		}
		return ctx.JSON(http.StatusOK, SuccessResponse{Success: "User deleted successfully!"})
	}
}

type (
	// NewUserRequest is the admin "add user" form: mentors carry a profile, students a mentor.
	NewUserRequest struct {
		Role           user.Role `json:"role" validate:"omitempty,oneof=mentor student"`
		Name           string    `json:"name" validate:"notblank"`
		Email          string    `json:"email" validate:"notblank"`
		Password       string    `json:"password" validate:"notblank"`
		Specialization string    `json:"specialization"`
		Bio            string    `json:"bio"`
		MentorID       string    `json:"mentor_id"`
	}

	UsersView struct {
		Users  []user.User `json:"users"`
		Counts user.Counts `json:"counts"`
	}
)
