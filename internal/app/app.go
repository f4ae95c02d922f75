package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards/internal/adapter/postgres"
	cardrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/card"
	catalogrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/catalog"
	deckrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/deck"
	sessionrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/session"
	userrepo "github.com/heartmarshall/flashcards/internal/adapter/postgres/user"
	"github.com/heartmarshall/flashcards/internal/config"
	"github.com/heartmarshall/flashcards/internal/scheduler"
	"github.com/heartmarshall/flashcards/internal/service/auth"
	"github.com/heartmarshall/flashcards/internal/service/card"
	"github.com/heartmarshall/flashcards/internal/service/catalog"
	"github.com/heartmarshall/flashcards/internal/service/convert"
	"github.com/heartmarshall/flashcards/internal/service/deck"
	"github.com/heartmarshall/flashcards/internal/service/study"
	"github.com/heartmarshall/flashcards/internal/transport/middleware"
	"github.com/heartmarshall/flashcards/internal/transport/rest"
)

// Run is the server entry point. It blocks until ctx is cancelled, then
// drains in-flight requests within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	s := newServer(cfg, pool, logger)
	defer s.close()

	if cfg.Catalog.SeedOnStart {
		if err := seedCatalog(ctx, s.catalog, cfg.Catalog.Path); err != nil {
			return err
		}
	}

	sched := scheduler.New(s.auth, logger)
	if err := sched.Start(cfg.Maintenance.SessionSweepInterval); err != nil {
		return err
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      s.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// server is the wired HTTP stack over one pool. The services are exposed
// for the startup and background work that runs next to the handler.
type server struct {
	handler http.Handler
	auth    *auth.Service
	catalog *catalog.Service
	close   func()
}

func newServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *server {
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)
	decks := deckrepo.New(pool)
	cards := cardrepo.New(pool)

	authSvc := auth.NewService(logger, users, sessions, txm, cfg.Auth)
	deckSvc := deck.NewService(logger, decks, cards)
	cardSvc := card.NewService(logger, cards, decks)
	studySvc := study.NewService(logger, decks, cards, cfg.Study.Timezone)
	convertSvc := convert.NewService(logger, decks, cards)
	catalogSvc := catalog.NewService(logger, catalogrepo.New(pool), txm)

	closeFn := func() {}
	var throttle middleware.Middleware
	if cfg.Auth.AttemptsPerMinute > 0 {
		t := middleware.NewThrottle(cfg.Auth.AttemptsPerMinute, time.Minute)
		closeFn = t.Stop
		throttle = t.Middleware()
	}

	mux := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(map[string]rest.Pinger{"postgres": pool}, BuildVersion()),
		Auth:   rest.NewAuthHandler(authSvc, cfg.Auth, logger),
		Decks:  rest.NewDeckHandler(deckSvc, logger),
		Cards:  rest.NewCardHandler(cardSvc, logger),
		Study:  rest.NewStudyHandler(studySvc, convertSvc, logger),
		Public: rest.NewPublicHandler(catalogSvc, logger),
	}, middleware.Auth(authSvc, cfg.Auth.CookieName, logger), throttle)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return &server{handler: handler, auth: authSvc, catalog: catalogSvc, close: closeFn}
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return pool, nil
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
