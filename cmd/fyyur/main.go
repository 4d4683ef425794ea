package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyyur/internal/config"
	"fyyur/internal/directory"
	"fyyur/internal/http-server/handlers/artist/createArtist"
	"fyyur/internal/http-server/handlers/artist/deleteArtist"
	"fyyur/internal/http-server/handlers/artist/editArtist"
	"fyyur/internal/http-server/handlers/artist/getArtist"
	"fyyur/internal/http-server/handlers/artist/listArtists"
	"fyyur/internal/http-server/handlers/artist/searchArtists"
	"fyyur/internal/http-server/handlers/show/createShow"
	"fyyur/internal/http-server/handlers/show/deleteShow"
	"fyyur/internal/http-server/handlers/show/listShows"
	"fyyur/internal/http-server/handlers/venue/createVenue"
	"fyyur/internal/http-server/handlers/venue/deleteVenue"
	"fyyur/internal/http-server/handlers/venue/editVenue"
	"fyyur/internal/http-server/handlers/venue/getVenue"
	"fyyur/internal/http-server/handlers/venue/listVenues"
	"fyyur/internal/http-server/handlers/venue/searchVenues"
	"fyyur/internal/http-server/middleware/auth"
	"fyyur/internal/http-server/middleware/mwlogger"
	"fyyur/internal/http-server/middleware/ratelimit"
	"fyyur/internal/lib/logger/handlers/slogpretty"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/notify"
	"fyyur/internal/notify/rabbitmq"
	"fyyur/internal/storage/memory"
	"fyyur/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

type store interface {
	directory.Store
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting fyyur", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))
	log.Debug("Debug messages are enabled")

	storage, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	var publisher notify.Publisher = notify.Discard{}

	var broker *rabbitmq.Publisher
	if cfg.RabbitMQ.URL != "" {
		broker, err = rabbitmq.New(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Warn("rabbitmq unavailable, change events disabled", sl.Err(err))
		} else {
			publisher = broker
		}
	}

	var rdb redis.UniversalClient
	if cfg.Redis.Address != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	svc := directory.New(log, storage, publisher)

	router := newRouter(log, svc, cfg.Auth.JWTSecret, rdb, cfg.Redis)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if broker != nil {
		if err = broker.Close(); err != nil {
			log.Error("failed to close rabbitmq connection", sl.Err(err))
		}
	}

	if rdb != nil {
		if err = rdb.Close(); err != nil {
			log.Error("failed to close redis client", sl.Err(err))
		}
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

// newRouter mounts every handler. Write routes get the bearer guard when
// secret is set and the rate limiter when rdb is not nil.
func newRouter(log *slog.Logger, svc *directory.Service, secret string, rdb redis.Cmdable, limits config.Redis) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/venues", listVenues.New(log, svc))
	router.Get("/venues/search", searchVenues.New(log, svc))
	router.Post("/venues/search", searchVenues.New(log, svc))
	router.Get("/venues/{id}", getVenue.New(log, svc))

	router.Get("/artists", listArtists.New(log, svc))
	router.Get("/artists/search", searchArtists.New(log, svc))
	router.Post("/artists/search", searchArtists.New(log, svc))
	router.Get("/artists/{id}", getArtist.New(log, svc))

	router.Get("/shows", listShows.New(log, svc))

	router.Group(func(r chi.Router) {
		if secret != "" {
			r.Use(auth.New(log, secret))
		}
		if rdb != nil {
			r.Use(ratelimit.New(log, rdb, limits.RateLimit, limits.Window))
		}

		r.Post("/venues/create", createVenue.New(log, svc))
		r.Post("/venues/{id}/edit", editVenue.New(log, svc))
		r.Delete("/venues/{id}", deleteVenue.New(log, svc))

		r.Post("/artists/create", createArtist.New(log, svc))
		r.Post("/artists/{id}/edit", editArtist.New(log, svc))
		r.Delete("/artists/{id}", deleteArtist.New(log, svc))

		r.Post("/shows/create", createShow.New(log, svc))
		r.Delete("/shows/{id}", deleteShow.New(log, svc))
	})

	return router
}

func setupStorage(cfg *config.Config) (store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StoragePostgres:
		db, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
