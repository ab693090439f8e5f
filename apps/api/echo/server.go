package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/workspace"
	metricsvc "github.com/trezcool/mentorhub/services/metrics"
	sessionstore "github.com/trezcool/mentorhub/storage/session"
)

type ServerDeps struct {
	Conf       *core.Config
	Logger     core.Logger
	Gateway    *auth.Gateway
	Policy     *navigation.Policy
	Workspaces *workspace.Registry
	Sessions   *sessionstore.CookieStore
	Metrics    *metricsvc.Metrics
	Validate   *validator.Validate
	Translator ut.Translator
}

type Server struct {
	deps     ServerDeps
	app      *echo.Echo
	errors   chan error
	shutdown chan os.Signal
}

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = conf.TestMode
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(metricsMiddleware(s.deps.Metrics))
	s.app.Use(sessionMiddleware(conf, s.deps.Sessions))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug && !conf.TestMode

	s.app.GET("/health", health)
	s.app.GET("/metrics", echo.WrapHandler(s.deps.Metrics.Handler()))

	// every page goes through the navigation policy
	pages := s.app.Group("", viewGuard(s.deps.Policy), workspaceMiddleware(s.deps.Workspaces))

	registerAccountAPI(s.app, pages, s.deps)
	registerDashboardAPI(pages, s.deps)
	registerProgramAPI(pages, s.deps)
	registerLessonAPI(pages, s.deps)
	registerMaterialAPI(pages, s.deps)
	registerMessageAPI(pages, s.deps)
	registerNotificationAPI(pages, s.deps)
	registerUserAPI(pages, s.deps)
}

// Start blocks serving requests; startup failures are reported on Errors.
func (s *Server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}

func health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
