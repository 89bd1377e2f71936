package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/team-task-service/internal/config"
	"github.com/bagdasarian/team-task-service/internal/db"
	"github.com/bagdasarian/team-task-service/internal/domain"
	"github.com/bagdasarian/team-task-service/internal/handler"
	"github.com/bagdasarian/team-task-service/internal/handler/server"
	"github.com/bagdasarian/team-task-service/internal/repository/postgres"
	"github.com/bagdasarian/team-task-service/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	bus := domain.NewEventBus()

	teamRepo := postgres.NewTeamRepository(database, bus)
	taskRepo := postgres.NewTaskRepository(database, bus)
	rosterRepo := postgres.NewRosterRepository(database)

	reorgService := service.NewReorganizationService(teamRepo, bus)
	notifier := service.NewLogAdminNotifier()
	service.NewTeamReorganizationPolicy(bus, teamRepo, reorgService, notifier)

	teamService := service.NewTeamService(teamRepo, bus)
	taskService := service.NewTaskService(taskRepo, teamRepo, bus)
	rosterService := service.NewRosterService(rosterRepo)

	h := handler.NewHandler(teamService, taskService, rosterService)
	srv := server.NewServer(h, cfg.Server.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
