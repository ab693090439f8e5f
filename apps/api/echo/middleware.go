package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/user"
	"github.com/trezcool/mentorhub/core/workspace"
	metricsvc "github.com/trezcool/mentorhub/services/metrics"
	sessionstore "github.com/trezcool/mentorhub/storage/session"
)

// sessionMiddleware resolves the session of the request from its bearer token, or else its session cookie.
// A malformed or expired token is rejected; a missing session is left to the navigation policy.
func sessionMiddleware(conf *core.Config, cookies *sessionstore.CookieStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var store auth.Store
			if raw, ok := bearerToken(ctx); ok {
				claims, err := parseToken(conf, raw)
				if err != nil {
					return err
				}
				store = &tokenStore{sess: &auth.Session{ID: claims.Id, User: claims.User}}
			} else {
				store = cookies.For(ctx.Request(), ctx.Response())
			}
			ctx.Set(contextStoreKey, store)

			if sess, err := store.Load(); err == nil {
				ctx.Set(contextSessionKey, sess)
			}
			return next(ctx)
		}
	}
}

// viewGuard lets a request through only when the navigation policy allows its path for the session role.
func viewGuard(policy *navigation.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			var role user.Role
			if sess, ok := getContextSession(ctx); ok {
				role = sess.User.Role
			}
			decision := policy.Decide(ctx.Request().URL.Path, role)
			switch decision.Outcome {
			case navigation.Allow:
				return next(ctx)
			case navigation.Redirect:
				return ctx.Redirect(http.StatusSeeOther, decision.Redirect)
			default:
				return errHttpNotFound
			}
		}
	}
}

// workspaceMiddleware attaches the session's workspace to authenticated requests.
func workspaceMiddleware(registry *workspace.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if sess, ok := getContextSession(ctx); ok {
				ctx.Set(contextWorkspaceKey, registry.Get(sess.ID))
			}
			return next(ctx)
		}
	}
}

func metricsMiddleware(metrics *metricsvc.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}
			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.ObserveRequest(route, ctx.Request().Method, ctx.Response().Status, time.Since(start))
			return nil
		}
	}
}
