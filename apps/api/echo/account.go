package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/user"
	"github.com/trezcool/mentorhub/core/workspace"
	metricsvc "github.com/trezcool/mentorhub/services/metrics"
)

type accountApi struct {
	conf       *core.Config
	gateway    *auth.Gateway
	policy     *navigation.Policy
	workspaces *workspace.Registry
	metrics    *metricsvc.Metrics
}

func registerAccountAPI(app *echo.Echo, pages *echo.Group, deps ServerDeps) {
	api := accountApi{
		conf:       deps.Conf,
		gateway:    deps.Gateway,
		policy:     deps.Policy,
		workspaces: deps.Workspaces,
		metrics:    deps.Metrics,
	}

	// outside of the navigation policy
	app.POST("/logout", api.logout)
	app.GET("/navigation", api.navigation)

	pages.GET("/", api.root)
	pages.GET(navigation.PathLogin, api.loginPage)
	pages.POST(navigation.PathLogin, api.login)
	pages.GET(navigation.PathRegister, api.registerPage)
	pages.POST(navigation.PathRegister, api.register)
	pages.GET(navigation.PathProfile, api.profile)
	pages.PUT(navigation.PathProfile, api.updateProfile)
}

// Handlers

// root is only reached when the navigation policy lets "/" through, which it never does.
func (api *accountApi) root(ctx echo.Context) error {
	if _, ok := getContextSession(ctx); ok {
		return ctx.Redirect(http.StatusSeeOther, navigation.PathDashboard)
	}
	return ctx.Redirect(http.StatusSeeOther, navigation.PathLogin)
}

func (api *accountApi) loginPage(ctx echo.Context) error {
	return renderPublicPage(ctx, "login")
}

func (api *accountApi) registerPage(ctx echo.Context) error {
	return renderPublicPage(ctx, "register")
}

func (api *accountApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}

	sess, err := api.gateway.Login(ctx.Request().Context(), store, data.Email, data.Password)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	api.metrics.LoggedIn(sess.User.Role)
	return api.respondWithSession(ctx, http.StatusOK, sess)
}

func (api *accountApi) register(ctx echo.Context) error {
	var data auth.Registration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Registration")
	}
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}

	sess, err := api.gateway.Register(ctx.Request().Context(), store, data)
	if err != nil {
		return errors.Wrap(err, "registering")
	}
	api.metrics.Registered(sess.User.Role)
	return api.respondWithSession(ctx, http.StatusCreated, sess)
}

func (api *accountApi) logout(ctx echo.Context) error {
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}
	if sess, ok := getContextSession(ctx); ok {
		api.workspaces.Drop(sess.ID)
	}
	if err = api.gateway.Logout(store); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "You have been logged out.", Data: echo.Map{"redirect": navigation.PathLogin}})
}

func (api *accountApi) navigation(ctx echo.Context) error {
	var role user.Role
	if sess, ok := getContextSession(ctx); ok {
		role = sess.User.Role
	}
	links := []navigation.Link{}
	if role != "" {
		links = api.policy.Links(role)
	}
	return ctx.JSON(http.StatusOK, NavigationResponse{Links: links, Routes: api.policy.Routes(role)})
}

func (api *accountApi) profile(ctx echo.Context) error {
	usr, err := getContextUser(ctx)
	if err != nil {
		return err
	}
	return renderPage(ctx, api.policy, newProfileView(usr))
}

func (api *accountApi) updateProfile(ctx echo.Context) error {
	var data auth.ProfileUpdate
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ProfileUpdate")
	}
	store, err := getContextStore(ctx)
	if err != nil {
		return err
	}

	sess, err := api.gateway.UpdateProfile(store, data)
	if err != nil {
		return errors.Wrap(err, "updating profile")
	}

	resp := ProfileResponse{ProfileView: newProfileView(sess.User)}
	// token clients hold their session: hand them the updated one
	if usesToken(ctx) {
		if resp.Token, err = GenerateToken(api.conf, GetUserClaims(api.conf, sess)); err != nil {
			return errors.Wrap(err, "generating token")
		}
	}
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: "Profile updated successfully!", Data: resp})
}

func (api *accountApi) respondWithSession(ctx echo.Context, code int, sess auth.Session) error {
	token, err := GenerateToken(api.conf, GetUserClaims(api.conf, sess))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(code, LoginResponse{Token: token, User: sess.User, Redirect: navigation.PathDashboard})
}

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Token    string    `json:"token"`
		User     user.User `json:"user"`
		Redirect string    `json:"redirect"`
	}

	NavigationResponse struct {
		Links  []navigation.Link  `json:"links"`
		Routes []navigation.Route `json:"routes"`
	}

	ProfileView struct {
		User            user.User `json:"user"`
		LevelProgress   float64   `json:"level_progress"`
		NextLevelPoints int       `json:"next_level_points"`
	}

	ProfileResponse struct {
		ProfileView
		Token string `json:"token,omitempty"`
	}
)

func newProfileView(usr user.User) ProfileView {
	return ProfileView{User: usr, LevelProgress: usr.LevelProgress(), NextLevelPoints: usr.NextLevelPoints()}
}
