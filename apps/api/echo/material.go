package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core/material"
	"github.com/trezcool/mentorhub/core/navigation"
)

type materialApi struct {
	policy *navigation.Policy
}

func registerMaterialAPI(pages *echo.Group, deps ServerDeps) {
	api := materialApi{policy: deps.Policy}

	mg := pages.Group(navigation.PathMaterials)
	mg.GET("", api.query)
	mg.POST("/:id/download", api.download)
}

// Handlers

func (api *materialApi) query(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	var filter material.QueryFilter
	if err = ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}

	reqCtx := ctx.Request().Context()
	mats, err := ws.Materials.Filter(reqCtx, filter)
	if err != nil {
		return errors.Wrap(err, "filtering materials")
	}
	categories, err := ws.Materials.Categories(reqCtx)
	if err != nil {
		return errors.Wrap(err, "listing categories")
	}
	types, err := ws.Materials.Types(reqCtx)
	if err != nil {
		return errors.Wrap(err, "listing types")
	}
	return renderPage(ctx, api.policy, MaterialsView{Materials: mats, Categories: categories, Types: types})
}

func (api *materialApi) download(ctx echo.Context) error {
	ws, err := getContextWorkspace(ctx)
	if err != nil {
		return err
	}
	m, err := ws.Materials.Download(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "downloading material")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Downloading " + m.Title, Data: m})
}

type MaterialsView struct {
	Materials  []material.Material `json:"materials"`
	Categories []string            `json:"categories"`
	Types      []string            `json:"types"`
}
