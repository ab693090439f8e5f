package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		Host            string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	AuthConfig struct {
		SuperAdminEmail    string
		LoginDelay         time.Duration
		SessionKey         string // the single well-known key the session user is stored under
		JWTExpirationDelta time.Duration
		CookieSecure       bool
		CookieMaxAge       time.Duration
	}

	WorkspaceConfig struct {
		IdleTimeout   time.Duration
		SweepInterval time.Duration
	}

	DirectoryConfig struct {
		DefaultMentorID string // assigned to students created without a mentor
	}

	CLIConfig struct {
		SessionDir string
	}

	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string
		Server       ServerConfig
		Auth         AuthConfig
		Workspace    WorkspaceConfig
		Directory    DirectoryConfig
		CLI          CLIConfig
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "MentorHub")
	conf.SetDefault("build", "dev")
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("secretKey", "x8!v$c2+mentorhub-dev-secret=9kq#w7z(t1)p0")
	conf.SetDefault("rollbarToken", "")

	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.disableReqLogs", false)

	conf.SetDefault("auth.superAdminEmail", "mirshod@mentorhub.com")
	conf.SetDefault("auth.loginDelay", time.Second)
	conf.SetDefault("auth.sessionKey", "mentoring_platform_user")
	conf.SetDefault("auth.jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("auth.cookieSecure", false)
	conf.SetDefault("auth.cookieMaxAge", 30*24*time.Hour)

	conf.SetDefault("workspace.idleTimeout", 2*time.Hour)
	conf.SetDefault("workspace.sweepInterval", 10*time.Minute)

	conf.SetDefault("directory.defaultMentorID", "1")

	conf.SetDefault("cli.sessionDir", defaultSessionDir())

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
		conf.SetDefault("auth.loginDelay", time.Duration(0))
		conf.SetDefault("server.disableReqLogs", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		SecretKey:    conf.GetString("secretKey"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         conf.GetString("server.address"),
			Host:            conf.GetString("server.host"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
		},
		Auth: AuthConfig{
			SuperAdminEmail:    conf.GetString("auth.superAdminEmail"),
			LoginDelay:         conf.GetDuration("auth.loginDelay"),
			SessionKey:         conf.GetString("auth.sessionKey"),
			JWTExpirationDelta: conf.GetDuration("auth.jwtExpirationDelta"),
			CookieSecure:       conf.GetBool("auth.cookieSecure"),
			CookieMaxAge:       conf.GetDuration("auth.cookieMaxAge"),
		},
		Workspace: WorkspaceConfig{
			IdleTimeout:   conf.GetDuration("workspace.idleTimeout"),
			SweepInterval: conf.GetDuration("workspace.sweepInterval"),
		},
		Directory: DirectoryConfig{
			DefaultMentorID: conf.GetString("directory.defaultMentorID"),
		},
		CLI: CLIConfig{
			SessionDir: conf.GetString("cli.sessionDir"),
		},
	}
}

// NewTestConfig returns a Config suitable for tests: no artificial delays, no request logs.
func NewTestConfig() *Config {
	conf := NewConfig()
	conf.Debug = true
	conf.TestMode = true
	conf.Auth.LoginDelay = 0
	conf.Server.DisableReqLogs = true
	return conf
}

func defaultSessionDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "mentorhub")
	}
	return filepath.Join(os.TempDir(), "mentorhub")
}
