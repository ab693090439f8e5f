package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/program"
)

type programApi struct {
	policy *navigation.Policy
}

func registerProgramAPI(pages *echo.Group, deps ServerDeps) {
	api := programApi{policy: deps.Policy}

	pg := pages.Group(navigation.PathPrograms)
	pg.GET("", api.query)
	pg.GET("/:id", api.retrieve)
	pg.POST("/:id/continue", api.continueProgram)
	pg.POST("/:id/lessons", api.addLesson)
	pg.POST("/:id/lessons/:lessonId/complete", api.completeLesson)
	pg.POST("/:id/lessons/:lessonId/toggle", api.toggleLesson)
}

// Handlers

func (api *programApi) query(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var filter program.QueryFilter
	if err = ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	progs, err := ws.Programs.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "filtering programs")
	}
	counts, err := ws.Programs.Counts(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "counting programs")
	}
	return renderPage(ctx, api.policy, ProgramsView{Programs: progs, Counts: counts})
}

func (api *programApi) retrieve(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	prog, err := ws.Programs.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding program by ID")
	}
	return renderPage(ctx, api.policy, prog)
}

func (api *programApi) continueProgram(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	prog, lesson, err := ws.Programs.Continue(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "continuing program")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: "Lesson completed: " + lesson.Title,
		Data:    LessonResponse{Program: prog, Lesson: lesson},
	})
}

func (api *programApi) addLesson(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var data program.NewLesson
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}

	prog, lesson, err := ws.Programs.AddLesson(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "adding lesson")
	}
	return ctx.JSON(http.StatusCreated, SuccessResponse{
		Success: "Lesson added successfully!",
		Data:    LessonResponse{Program: prog, Lesson: lesson},
	})
}

func (api *programApi) completeLesson(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	prog, err := ws.Programs.CompleteLesson(ctx.Request().Context(), ctx.Param("id"), ctx.Param("lessonId"))
	if err != nil {
		return errors.Wrap(err, "completing lesson")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Lesson marked as completed!", Data: prog})
}

func (api *programApi) toggleLesson(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	prog, err := ws.Programs.ToggleLesson(ctx.Request().Context(), ctx.Param("id"), ctx.Param("lessonId"))
	if err != nil {
		return errors.Wrap(err, "toggling lesson")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Lesson progress updated!", Data: prog})
}

type (
	ProgramsView struct {
		Programs []program.Program    `json:"programs"`
		Counts   program.StatusCounts `json:"counts"`
	}

	LessonResponse struct {
		Program program.Program `json:"program"`
		Lesson  program.Lesson  `json:"lesson"`
	}
)
