package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackmichael/blog-service/internal/config"
	"github.com/blackmichael/blog-service/internal/domain"
	"github.com/blackmichael/blog-service/internal/httpserver"
	"github.com/blackmichael/blog-service/internal/imagestore"
	"github.com/blackmichael/blog-service/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	store, err := storage.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}
	logger.Info("connected to database")

	images, err := imagestore.NewFS(cfg.ImagesDir)
	if err != nil {
		return fmt.Errorf("create image store: %w", err)
	}

	posts := storage.NewPostStore(store)
	tags := storage.NewTagStore(store)
	comments := storage.NewCommentStore(store)

	assembler := domain.NewAssembler(comments, tags)
	postService := domain.NewPostService(posts, tags, images, assembler, logger)
	commentService := domain.NewCommentService(comments, logger)
	imageService := domain.NewImageService(posts, images, imagestore.DefaultImage(), logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	server := httpserver.NewServer(cfg, postService, commentService, imageService, logger)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server exited with error", "error", err)
		}
	}()

	logger.Info("server started", "port", cfg.Port)

	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig)
	cancel()

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("error shutting down http server", "error", err)
	}

	return nil
}
