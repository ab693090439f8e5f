package logsvc

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/rollbar/rollbar-go"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/user"
)

var (
	jane = user.User{ID: "1", Name: "Jane Doe", Email: "jane@example.com", Role: user.RoleMentor}
	alex = user.User{ID: "2", Name: "Alex Johnson", Email: "alex@example.com", Role: user.RoleStudent}
)

func TestNewItem(t *testing.T) {
	errFetch := errors.New("connection refused")

	tests := []struct {
		name       string
		args       []interface{}
		wantPerson *rollbar.Person
		wantErr    error
		wantExtras map[string]interface{}
	}{
		{name: "message only", wantExtras: map[string]interface{}{}},
		{
			name:       "session",
			args:       []interface{}{auth.Session{ID: "s1", User: jane}},
			wantPerson: &rollbar.Person{Id: "1", Username: "Jane Doe", Email: "jane@example.com"},
			wantExtras: map[string]interface{}{"session_id": "s1", "role": "mentor"},
		},
		{
			name:       "first user wins",
			args:       []interface{}{alex, jane},
			wantPerson: &rollbar.Person{Id: "2", Username: "Alex Johnson", Email: "alex@example.com"},
			wantExtras: map[string]interface{}{"role": "student"},
		},
		{
			name:       "error and extras",
			args:       []interface{}{errFetch, map[string]interface{}{"material": "1"}, 42},
			wantErr:    errFetch,
			wantExtras: map[string]interface{}{"message": "fetch failed", "material": "1", "args": []interface{}{42}},
		},
		{
			name:       "extra errors are listed",
			args:       []interface{}{errFetch, errors.New("timeout")},
			wantErr:    errFetch,
			wantExtras: map[string]interface{}{"message": "fetch failed", "args": []interface{}{"timeout"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := newItem("fetch failed", tt.args)
			assert.Equal(t, tt.wantPerson, it.person)
			assert.Equal(t, tt.wantErr, it.err)
			assert.Equal(t, tt.wantExtras, it.extras)

			p, ok := rollbar.PersonFromContext(it.context())
			assert.Equal(t, tt.wantPerson != nil, ok)
			if ok {
				assert.Equal(t, tt.wantPerson, p)
			}
		})
	}
}

func TestRollbarLogger_print(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "TEST : ", 0), core.NewTestConfig())
	logger.Enable(false)

	logger.Warn("material fetch failed", fmt.Errorf("connection refused"))
	logger.Info("workspaces evicted", 2)

	want := "TEST : WARNING: material fetch failed\nTEST : connection refused\n" +
		"TEST : INFO: workspaces evicted\nTEST : 2\n"
	assert.Equal(t, want, buf.String())
}

func TestScrubFields(t *testing.T) {
	for _, field := range []string{"password", "Password_Confirm", "token", "session_key"} {
		assert.True(t, scrubFields.MatchString(field), field)
	}
	for _, field := range []string{"email", "passwords", "token_type"} {
		assert.False(t, scrubFields.MatchString(field), field)
	}
}
