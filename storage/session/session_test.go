package sessionstore

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/user"
)

var testSession = auth.Session{
	ID:   "sid",
	User: user.User{ID: "1", Name: "Jane Student", Email: "jane@example.com", Role: user.RoleStudent, Points: 1250, Level: 3, Badges: []user.Badge{}},
}

// testStore runs the contract every auth.Store honours.
func testStore(t *testing.T, store auth.Store, wantID string) {
	_, err := store.Load()
	assert.Equal(t, auth.ErrNoSession, err)

	require.NoError(t, store.Save(testSession))
	sess, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, wantID, sess.ID)
	assert.Equal(t, testSession.User, sess.User)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.Equal(t, auth.ErrNoSession, err)
	assert.NoError(t, store.Clear())
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore(), testSession.ID)
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir+"/nested", "mentoring_platform_user")
	testStore(t, store, "mentoring_platform_user")

	t.Run("corrupt file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(store.Path(), []byte("{lol"), 0o600))
		_, err := store.Load()
		assert.Equal(t, auth.ErrNoSession, err)
	})

	t.Run("permissions", func(t *testing.T) {
		require.NoError(t, store.Save(testSession))
		fi, err := os.Stat(store.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	})
}

func TestCookieStore(t *testing.T) {
	conf := core.NewTestConfig()
	cs := NewCookieStore(conf)

	// Save
	rec := httptest.NewRecorder()
	store := cs.For(httptest.NewRequest(http.MethodPost, "/login", nil), rec)
	_, err := store.Load()
	assert.Equal(t, auth.ErrNoSession, err)
	require.NoError(t, store.Save(testSession))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, conf.Auth.SessionKey, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.NotContains(t, cookie.Value, "jane@example.com")

	// Load
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	sess, err := cs.For(req, httptest.NewRecorder()).Load()
	require.NoError(t, err)
	assert.Equal(t, testSession, sess)

	t.Run("tampered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value[:len(cookie.Value)-4] + "AAAA"})
		_, err := cs.For(req, httptest.NewRecorder()).Load()
		assert.Equal(t, auth.ErrNoSession, err)
	})

	t.Run("other secret", func(t *testing.T) {
		other := core.NewTestConfig()
		other.SecretKey = "another secret"
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(cookie)
		_, err := NewCookieStore(other).For(req, httptest.NewRecorder()).Load()
		assert.Equal(t, auth.ErrNoSession, err)
	})

	t.Run("clear", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		require.NoError(t, cs.For(req, rec).Clear())

		cleared := rec.Result().Cookies()
		require.Len(t, cleared, 1)
		assert.Equal(t, conf.Auth.SessionKey, cleared[0].Name)
		assert.True(t, cleared[0].MaxAge < 0)
	})
}
