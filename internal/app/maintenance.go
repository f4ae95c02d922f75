package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards/internal/adapter/postgres"
	catalogrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/catalog"
	sessionrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/session"
	userrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/user"
	"github.com/heartmarshall/flashcards/internal/config"
	"github.com/heartmarshall/flashcards/internal/service/auth"
	"github.com/heartmarshall/flashcards/internal/service/catalog"
)

type catalogSeeder interface {
	Seed(ctx context.Context, b *catalog.Bundle) error
}

func seedCatalog(ctx context.Context, svc catalogSeeder, path string) error {
	bundle, err := catalog.LoadBundle(path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := svc.Seed(ctx, bundle); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

// SeedCatalog reloads the public catalog from path, or from the bundled
// catalog when path is empty, without starting the server.
func SeedCatalog(ctx context.Context, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if path == "" {
		path = cfg.Catalog.Path
	}
	svc := catalog.NewService(logger, catalogrepo.New(pool), postgres.NewTxManager(pool))
	return seedCatalog(ctx, svc, path)
}

// CleanupSessions deletes expired sessions once and reports how many went.
func CleanupSessions(ctx context.Context) (int64, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}
	logger := NewLogger(cfg.Log)

	pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	svc := auth.NewService(logger, userrepo.New(pool), sessionrepo.New(pool), postgres.NewTxManager(pool), cfg.Auth)
	n, err := svc.CleanupExpiredSessions(ctx)
	if err != nil {
		return 0, err
	}
	logger.InfoContext(ctx, "session cleanup done", slog.Int64("deleted", n))
	return n, nil
}
