package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core/navigation"
)

type dashboardApi struct {
	policy *navigation.Policy
}

func registerDashboardAPI(pages *echo.Group, deps ServerDeps) {
	api := dashboardApi{policy: deps.Policy}

	pages.GET(navigation.PathDashboard, api.dashboard)
	pages.GET(navigation.PathAdminStats, api.platformStats)
}

// Handlers

func (api *dashboardApi) dashboard(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}

	view, err := ws.Dashboard.Build(ctx.Request().Context(), usr)
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	return renderPage(ctx, api.policy, view)
}

func (api *dashboardApi) platformStats(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}

	report, err := ws.Stats.Report(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building stats report")
	}
	return renderPage(ctx, api.policy, report)
}
