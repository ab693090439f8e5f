package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core/message"
	"github.com/trezcool/mentorhub/core/navigation"
	metricsvc "github.com/trezcool/mentorhub/services/metrics"
)

type messageApi struct {
	policy  *navigation.Policy
	metrics *metricsvc.Metrics
}

func registerMessageAPI(pages *echo.Group, deps ServerDeps) {
	api := messageApi{policy: deps.Policy, metrics: deps.Metrics}

	mg := pages.Group(navigation.PathMessages)
	mg.GET("", api.query)
	mg.POST("", api.send)
	mg.GET("/recipients", api.recipients)
	mg.POST("/:id/read", api.markAsRead)
}

// Handlers

func (api *messageApi) query(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var filter message.QueryFilter
	if err = ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	reqCtx := ctx.Request().Context()
	msgs, err := ws.Messages.Filter(reqCtx, usr.ID, filter)
	if err != nil {
		return errors.Wrap(err, "filtering messages")
	}
	views := make([]MessageView, 0, len(msgs))
	for _, msg := range msgs {
		views = append(views, MessageView{Message: msg, ReceiverName: ws.Messages.RecipientName(reqCtx, msg.ReceiverID)})
	}
	return renderPage(ctx, api.policy, views)
}

func (api *messageApi) recipients(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}

	users, err := ws.Messages.Recipients(ctx.Request().Context(), usr)
	if err != nil {
		return errors.Wrap(err, "listing recipients")
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *messageApi) send(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var data message.NewMessage
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMessage")
	}

	msg, err := ws.Messages.Send(ctx.Request().Context(), usr.ID, data)
	if err != nil {
		return errors.Wrap(err, "sending message")
	}
	api.metrics.MessageSent()
	return ctx.JSON(http.StatusCreated, SuccessResponse{Success: "Message sent successfully!", Data: msg})
}

func (api *messageApi) markAsRead(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	msg, err := ws.Messages.MarkAsRead(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "marking message as read")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Message marked as read.", Data: msg})
}

type MessageView struct {
	message.Message
	ReceiverName string `json:"receiver_name"`
}
