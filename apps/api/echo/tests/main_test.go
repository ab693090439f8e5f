package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/trezcool/mentorhub/apps/api/echo"
	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/workspace"
	metricsvc "github.com/trezcool/mentorhub/services/metrics"
	inmemdb "github.com/trezcool/mentorhub/storage/inmem"
	sessionstore "github.com/trezcool/mentorhub/storage/session"
	"github.com/trezcool/mentorhub/tests"
)

const (
	studentEmail    = "jane@example.com"
	mentorEmail     = "john.mentor@example.com"
	superAdminEmail = "mirshod@mentorhub.com"
)

type testServer struct {
	*Server
	conf       *core.Config
	metrics    *metricsvc.Metrics
	workspaces *workspace.Registry
	logger     *testutil.Logger
}

func setup(t *testing.T) testServer {
	conf := core.NewTestConfig()
	conf.Auth.SuperAdminEmail = superAdminEmail
	logger := new(testutil.Logger)
	metrics := metricsvc.New()
	validate, translator := core.NewValidator()

	workspaces := workspace.NewRegistry(workspace.Deps{
		Open:              inmemdb.OpenSeededStore,
		Validate:          validate,
		Fetcher:           metrics.Downloads(),
		Logger:            logger,
		OnLessonCompleted: metrics.LessonCompleted,
	})
	metrics.TrackWorkspaces(workspaces.Len)

	// set up server
	srv := NewServer(
		ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Gateway:    auth.NewGateway(auth.Options{SuperAdminEmail: conf.Auth.SuperAdminEmail}, validate),
			Policy:     navigation.NewPolicy(),
			Workspaces: workspaces,
			Sessions:   sessionstore.NewCookieStore(conf),
			Metrics:    metrics,
			Validate:   validate,
			Translator: translator,
		},
	)
	return testServer{Server: srv, conf: conf, metrics: metrics, workspaces: workspaces, logger: logger}
}

func (srv testServer) serve(req *http.Request, rec *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	srv.ServeHTTP(rec, req)
	return rec
}

// login logs `email` in and returns its bearer token and session cookies.
func (srv testServer) login(t *testing.T, email string) (string, []*http.Cookie) {
	rec := srv.serve(newRequest(http.MethodPost, navigation.PathLogin, marchallObj(t, LoginRequest{Email: email, Password: "pwd"})))
	if rec.Code != http.StatusOK {
		t.Fatalf("login(%s) failed: %d %s", email, rec.Code, rec.Body.String())
	}
	var resp LoginResponse
	unmarshal(t, rec.Body.Bytes(), &resp)
	return resp.Token, rec.Result().Cookies()
}

func (srv testServer) token(t *testing.T, email string) string {
	token, _ := srv.login(t, email)
	return token
}
