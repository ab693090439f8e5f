package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core/lesson"
	"github.com/trezcool/mentorhub/core/navigation"
)

type lessonApi struct {
	policy *navigation.Policy
}

func registerLessonAPI(pages *echo.Group, deps ServerDeps) {
	api := lessonApi{policy: deps.Policy}

	lg := pages.Group(navigation.PathLessons)
	lg.GET("", api.query)
	lg.POST("", api.create)
	lg.GET("/:id", api.retrieve)
	lg.PUT("/:id", api.update)
	lg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *lessonApi) query(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var filter lesson.QueryFilter
	if err = ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	lessons, err := ws.Lessons.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "filtering lessons")
	}
	return renderPage(ctx, api.policy, lessons)
}

func (api *lessonApi) retrieve(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	l, err := ws.Lessons.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding lesson by ID")
	}
	return renderPage(ctx, api.policy, l)
}

func (api *lessonApi) create(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var data lesson.NewLesson
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}

	l, err := ws.Lessons.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating lesson")
	}
	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: "Lesson created successfully!", Data: l})
}

func (api *lessonApi) update(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var data lesson.NewLesson
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}

	l, err := ws.Lessons.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating lesson")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Lesson updated successfully!", Data: l})
}

func (api *lessonApi) destroy(ctx echo.Context) error {
	if err := requireConfirmation(ctx); err != nil {
		return err
	}
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	if err = ws.Lessons.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting lesson")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Lesson deleted successfully!"})
}
