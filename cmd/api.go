package cmd

import (
	"context"
	"errors"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"trading-dashboard/internal/delivery/http"
	"trading-dashboard/internal/repository"
	"trading-dashboard/internal/service"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the analytics API and the report scheduler",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo := repository.NewRepository(appDep.cfg, appDep.gormDB(), appDep.log)
	services := service.NewService(appDep.cfg, appDep.log, repo, appDep.notifier)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.cfg, appDep.log, appDep.echo, appDep.validator, services)

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)
	go func() {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	if appDep.cfg.Scheduler.Enabled {
		if err := services.SchedulerService.Start(ctx); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
	}

	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	if appDep.cfg.Scheduler.Enabled {
		services.SchedulerService.Stop()
	}

	if err := apiServer.Stop(); err != nil {
		log.Printf("Failed to stop HTTP server: %v", err)
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}
