package sessionstore

import (
	"crypto/sha256"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/user"
)

const (
	userValueKey = "user"
	sidValueKey  = "sid"
)

// CookieStore keeps the session of a browser in a signed and encrypted cookie.
type CookieStore struct {
	name  string
	store *sessions.CookieStore
}

func NewCookieStore(conf *core.Config) *CookieStore {
	hashKey := sha256.Sum256([]byte("hash:" + conf.SecretKey))
	blockKey := sha256.Sum256([]byte("block:" + conf.SecretKey))

	store := sessions.NewCookieStore(hashKey[:], blockKey[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(conf.Auth.CookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   conf.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieStore{name: conf.Auth.SessionKey, store: store}
}

// For binds the store to one request/response pair.
func (cs *CookieStore) For(r *http.Request, w http.ResponseWriter) auth.Store {
	return &cookieSession{cs: cs, r: r, w: w}
}

type cookieSession struct {
	cs *CookieStore
	r  *http.Request
	w  http.ResponseWriter
}

var _ auth.Store = (*cookieSession)(nil)

func (s *cookieSession) Load() (auth.Session, error) {
	// a cookie that fails to decode is treated as absent
	sess, err := s.cs.store.Get(s.r, s.cs.name)
	if err != nil || sess.IsNew {
		return auth.Session{}, auth.ErrNoSession
	}
	data, ok := sess.Values[userValueKey].(string)
	if !ok {
		return auth.Session{}, auth.ErrNoSession
	}
	var usr user.User
	if err = json.Unmarshal([]byte(data), &usr); err != nil {
		return auth.Session{}, auth.ErrNoSession
	}
	sid, _ := sess.Values[sidValueKey].(string)
	return auth.Session{ID: sid, User: usr}, nil
}

func (s *cookieSession) Save(sess auth.Session) error {
	data, err := json.Marshal(sess.User)
	if err != nil {
		return errors.Wrap(err, "marshalling user")
	}
	cookie, _ := s.cs.store.Get(s.r, s.cs.name) // a fresh session is returned on decode errors
	cookie.Values[userValueKey] = string(data)
	cookie.Values[sidValueKey] = sess.ID
	return errors.Wrap(cookie.Save(s.r, s.w), "saving cookie")
}

func (s *cookieSession) Clear() error {
	cookie, _ := s.cs.store.Get(s.r, s.cs.name)
	cookie.Values = make(map[interface{}]interface{})
	cookie.Options.MaxAge = -1
	return errors.Wrap(cookie.Save(s.r, s.w), "clearing cookie")
}
