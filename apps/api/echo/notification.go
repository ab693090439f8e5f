package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/notification"
)

type notificationApi struct {
	policy *navigation.Policy
}

func registerNotificationAPI(pages *echo.Group, deps ServerDeps) {
	api := notificationApi{policy: deps.Policy}

	ng := pages.Group(navigation.PathNotifications)
	ng.GET("", api.query)
	ng.POST("/read-all", api.markAllAsRead)
	ng.POST("/:id/read", api.markAsRead)
	ng.DELETE("/:id", api.destroy)
}

// Handlers

func (api *notificationApi) query(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var filter notification.QueryFilter
	if err = ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	reqCtx := ctx.Request().Context()
	notifs, err := ws.Notifications.Filter(reqCtx, filter)
	if err != nil {
		return errors.Wrap(err, "filtering notifications")
	}
	unread, err := ws.Notifications.UnreadCount(reqCtx)
	if err != nil {
		return errors.Wrap(err, "counting unread notifications")
	}
	return renderPage(ctx, api.policy, NotificationsView{Notifications: notifs, UnreadCount: unread})
}

func (api *notificationApi) markAsRead(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	n, err := ws.Notifications.MarkAsRead(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "marking notification as read")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Notification marked as read.", Data: n})
}

func (api *notificationApi) markAllAsRead(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	n, err := ws.Notifications.MarkAllAsRead(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "marking all notifications as read")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: strconv.Itoa(n) + " notification(s) marked as read."})
}

func (api *notificationApi) destroy(ctx echo.Context) error {
	if err := requireConfirmation(ctx); err != nil {
		return err
	}
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	if err = ws.Notifications.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting notification")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Notification deleted."})
}

type NotificationsView struct {
	Notifications []notification.Notification `json:"notifications"`
	UnreadCount   int                         `json:"unread_count"`
}
