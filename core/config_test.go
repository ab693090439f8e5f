package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "")
		conf := NewConfig()
		assert.Equal(t, "DEV", conf.Env)
		assert.Equal(t, "MentorHub", conf.AppName)
		assert.False(t, conf.TestMode)
		assert.Equal(t, time.Second, conf.Auth.LoginDelay)
		assert.Equal(t, "mentoring_platform_user", conf.Auth.SessionKey)
		assert.Equal(t, "mirshod@mentorhub.com", conf.Auth.SuperAdminEmail)
		assert.Equal(t, "1", conf.Directory.DefaultMentorID)
		assert.Equal(t, 2*time.Hour, conf.Workspace.IdleTimeout)
		assert.NotEmpty(t, conf.CLI.SessionDir)
	})

	t.Run("test env", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("TEST_AUTH_SUPERADMINEMAIL", "root@example.com")
		t.Setenv("TEST_WORKSPACE_IDLETIMEOUT", "15m")
		conf := NewConfig()
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
		assert.True(t, conf.Server.DisableReqLogs)
		assert.Zero(t, conf.Auth.LoginDelay)
		assert.Equal(t, "root@example.com", conf.Auth.SuperAdminEmail)
		assert.Equal(t, 15*time.Minute, conf.Workspace.IdleTimeout)
	})

	t.Run("test config", func(t *testing.T) {
		t.Setenv("ENV", "")
		conf := NewTestConfig()
		assert.True(t, conf.TestMode)
		assert.True(t, conf.Debug)
		assert.Zero(t, conf.Auth.LoginDelay)
	})
}
