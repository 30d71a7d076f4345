package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "microblog/internal/adapter/http"
	"microblog/internal/adapter/postgres"
	"microblog/internal/app"
	"microblog/internal/config"
)

const sessionSweepInterval = time.Hour

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("db open", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	accountRepo := postgres.NewAccountRepo(db)
	tweetRepo := postgres.NewTweetRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)

	sessions := app.NewSessionManager(sessionRepo)
	accounts := app.NewAccountService(accountRepo, sessions)
	tweets := app.NewTweetService(tweetRepo, accountRepo)

	server, err := adapthttp.New(accounts, tweets, sessions, log)
	if err != nil {
		log.Error("server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessions, log)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("listening", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("serve", "error", err)
		os.Exit(1)
	}
}

// sweepSessions periodically removes expired sessions.
func sweepSessions(ctx context.Context, sessions *app.SessionManager, log *slog.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.DeleteExpired(ctx); err != nil {
				log.Warn("sweep sessions", "error", err)
			}
		}
	}
}
