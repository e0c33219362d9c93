package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andsonalex-dev/todo-api/internal/config"
	api "github.com/andsonalex-dev/todo-api/internal/http"
	"github.com/andsonalex-dev/todo-api/internal/http/handler"
	"github.com/andsonalex-dev/todo-api/internal/logging"
	"github.com/andsonalex-dev/todo-api/internal/repository/memory"
	"github.com/andsonalex-dev/todo-api/internal/service"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}

	repo := memory.NewTodoRepository()
	svc := service.NewTodoService(repo)
	todoHandler := handler.NewTodoHandler(svc)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewRouter(todoHandler, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownSeconds)*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}
}
