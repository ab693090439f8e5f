package main

import (
	"context"
	"fmt"

	echoapi "github.com/trezcool/mentorhub/apps/api/echo"
	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/auth"
	"github.com/trezcool/mentorhub/core/navigation"
	"github.com/trezcool/mentorhub/core/workspace"
	logsvc "github.com/trezcool/mentorhub/services/logger"
	metricsvc "github.com/trezcool/mentorhub/services/metrics"
	inmemdb "github.com/trezcool/mentorhub/storage/inmem"
	sessionstore "github.com/trezcool/mentorhub/storage/session"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()
	logger := logsvc.New("API : ", conf)
	defer logger.Close()
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

	gateway := auth.NewGateway(
		auth.Options{SuperAdminEmail: conf.Auth.SuperAdminEmail, LoginDelay: conf.Auth.LoginDelay},
		validate,
	)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workspaces.Run(ctx, conf.Workspace.SweepInterval, conf.Workspace.IdleTimeout, logger)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Gateway:    gateway,
			Policy:     navigation.NewPolicy(),
			Workspaces: workspaces,
			Sessions:   sessionstore.NewCookieStore(conf),
			Metrics:    metrics,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer shutdownCancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
