package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/user"
)

var confirmParam = "confirm"

// Confirmation binds the `confirm` query param that destructive endpoints require.
type Confirmation struct {
	Confirmed bool
}

func (c *Confirmation) Bind(ctx echo.Context) {
	c.Confirmed, _ = strconv.ParseBool(ctx.QueryParam(confirmParam))
}

// Require returns core.ErrConfirmationRequired unless the request was confirmed.
func (c *Confirmation) Require() error {
	if !c.Confirmed {
		return core.ErrConfirmationRequired
	}
	return nil
}

func requireConfirmation(ctx echo.Context) error {
	var conf Confirmation
	conf.Bind(ctx)
	return conf.Require()
}

type (
	// Page is the model of a rendered view.
	Page struct {
		View  string            `json:"view"`
		User  *user.User        `json:"user,omitempty"`
		Links []navigation.Link `json:"links"`
		Data  interface{}       `json:"data,omitempty"`
	}

	SuccessResponse struct {
		Success string      `json:"success"`
		Data    interface{} `json:"data,omitempty"`
	}
)

// renderPage wraps `data` into the Page of the route matching the request.
func renderPage(ctx echo.Context, policy *navigation.Policy, data interface{}) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	var view string
	if route, ok := policy.Lookup(ctx.Request().URL.Path); ok {
		view = route.View
	}
	return ctx.JSON(http.StatusOK, Page{View: view, User: &usr, Links: policy.Links(usr.Role), Data: data})
}

// renderPublicPage renders a view reachable while unauthenticated.
func renderPublicPage(ctx echo.Context, view string) error {
	return ctx.JSON(http.StatusOK, Page{View: view, Links: []navigation.Link{}})
}
