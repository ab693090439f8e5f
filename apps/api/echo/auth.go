package echoapi

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/user"
	"github.com/trezcool/mentorhub/core/workspace"
)

var (
	jwtSigningMethod = middleware.AlgorithmHS256
	jwtAudience      = "MentorHub"
	authScheme       = "Bearer"

	contextStoreKey     = "sessionStore"
	contextSessionKey   = "session"
	contextWorkspaceKey = "workspace"
)

// Claims represents the authorization claims transmitted via a JWT.
// The session id travels as the JWT ID; the session user is embedded whole.
type Claims struct {
	jwt.StandardClaims
	User user.User `json:"user"`
}

func GetUserClaims(conf *core.Config, sess auth.Session) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        sess.ID,
			Issuer:    conf.AppName,
			Subject:   sess.User.ID,
			Audience:  jwtAudience,
			ExpiresAt: now.Add(conf.Auth.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		User: sess.User,
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(jwtSigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func parseToken(conf *core.Config, raw string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwtSigningMethod {
			return nil, errors.Errorf("unexpected jwt signing method=%v", t.Header["alg"])
		}
		return []byte(conf.SecretKey), nil
	})
	if err != nil || !token.Valid || claims.Id == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(ctx echo.Context) (string, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	l := len(authScheme)
	if len(header) > l+1 && strings.EqualFold(header[:l], authScheme) {
		return strings.TrimSpace(header[l+1:]), true
	}
	return "", false
}

// tokenStore is the auth.Store of bearer token clients: the token itself is the persisted state,
// so saved sessions are handed back as fresh tokens.
type tokenStore struct {
	sess *auth.Session
}

var _ auth.Store = (*tokenStore)(nil)

func (ts *tokenStore) Load() (auth.Session, error) {
	if ts.sess == nil {
		return auth.Session{}, auth.ErrNoSession
	}
	return *ts.sess, nil
}

func (ts *tokenStore) Save(sess auth.Session) error {
	ts.sess = &sess
	return nil
}

func (ts *tokenStore) Clear() error {
	ts.sess = nil
	return nil
}

func getContextStore(ctx echo.Context) (auth.Store, error) {
	if st, ok := ctx.Get(contextStoreKey).(auth.Store); ok {
		return st, nil
	}
	return nil, errors.New("session store not found in echo.Context")
}

func getContextSession(ctx echo.Context) (auth.Session, bool) {
	sess, ok := ctx.Get(contextSessionKey).(auth.Session)
	return sess, ok
}

func getContextUser(ctx echo.Context) (user.User, error) {
	if sess, ok := getContextSession(ctx); ok {
		return sess.User, nil
	}
	return user.User{}, errUnauthorized
}

func getContextWorkspace(ctx echo.Context) (*workspace.Workspace, error) {
	if ws, ok := ctx.Get(contextWorkspaceKey).(*workspace.Workspace); ok {
		return ws, nil
	}
	return nil, errUnauthorized
}

// usesToken reports whether the request authenticated with a bearer token.
func usesToken(ctx echo.Context) bool {
	_, ok := ctx.Get(contextStoreKey).(*tokenStore)
	return ok
}
