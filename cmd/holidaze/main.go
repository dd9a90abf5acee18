package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"holidaze/internal/account"
	"holidaze/internal/booking"
	"holidaze/internal/config"
	"holidaze/internal/http-server/handlers/auth/login"
	"holidaze/internal/http-server/handlers/auth/logout"
	"holidaze/internal/http-server/handlers/auth/register"
	"holidaze/internal/http-server/handlers/booking/cancelBooking"
	"holidaze/internal/http-server/handlers/booking/createBooking"
	"holidaze/internal/http-server/handlers/booking/myBookings"
	"holidaze/internal/http-server/handlers/booking/updateBooking"
	"holidaze/internal/http-server/handlers/profile/deleteProfile"
	"holidaze/internal/http-server/handlers/profile/getProfile"
	"holidaze/internal/http-server/handlers/profile/updateProfile"
	"holidaze/internal/http-server/handlers/venue/createVenue"
	"holidaze/internal/http-server/handlers/venue/deleteVenue"
	"holidaze/internal/http-server/handlers/venue/getVenue"
	"holidaze/internal/http-server/handlers/venue/listVenues"
	"holidaze/internal/http-server/handlers/venue/managerVenues"
	"holidaze/internal/http-server/handlers/venue/quoteBooking"
	"holidaze/internal/http-server/handlers/venue/updateVenue"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/http-server/middleware/mwlogger"
	"holidaze/internal/lib/logger/handlers/slogpretty"
	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/noroff"
	"holidaze/internal/session"
	"holidaze/internal/storage/redis"
	"holidaze/internal/venues"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// spaRoutes are the client-side pages served with the application shell.
var spaRoutes = []string{
	"/",
	"/login/user",
	"/register/user",
	"/login/venue-manager",
	"/register/venue-manager",
	"/venues",
	"/venue/{id}",
	"/venue-manager/dashboard",
	"/user/profile",
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting holidaze", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	client, err := noroff.New(cfg.API, log)
	if err != nil {
		log.Error("failed to init api client", sl.Err(err))
		os.Exit(1)
	}

	var (
		store  session.Store
		closer func() error
	)

	if cfg.Redis.Addr != "" {
		storage, err := redis.New(&cfg.Redis, log)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		store, closer = storage, storage.Close
		log.Info("sessions stored in redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		store = session.NewMemoryStore()
		log.Warn("redis not configured, sessions kept in memory")
	}

	sessions := session.NewManager(store, cfg.Session.TTL, log)
	accounts := account.New(client, sessions, log)
	bookings := booking.New(client, log)
	catalog := venues.NewCatalog(client, cfg.Catalog.CacheTTL, log)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", auth.HeaderName},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	secure := cfg.Session.CookieSecure

	router.Route("/api", func(r chi.Router) {
		r.Use(auth.New(log, sessions))

		r.Post("/auth/register", register.New(log, accounts, secure))
		r.Post("/auth/login", login.New(log, accounts, secure))
		r.Post("/auth/logout", logout.New(log, accounts, secure))

		r.Get("/venues", listVenues.New(log, catalog))
		r.Get("/venues/{id}", getVenue.New(log, bookings))
		r.Post("/venues/{id}/quote", quoteBooking.New(log, bookings))

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser)

			r.Get("/bookings", myBookings.New(log, bookings))
			r.Post("/bookings", createBooking.New(log, bookings))
			r.Put("/bookings/{id}", updateBooking.New(log, bookings))
			r.Delete("/bookings/{id}", cancelBooking.New(log, bookings))

			r.Get("/profile", getProfile.New(log, accounts))
			r.Put("/profile", updateProfile.New(log, accounts))
			r.Delete("/profile", deleteProfile.New(log, accounts, secure))
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireManager)

			r.Get("/manager/venues", managerVenues.New(log, catalog))
			r.Post("/venues", createVenue.New(log, catalog))
			r.Put("/venues/{id}", updateVenue.New(log, catalog))
			r.Delete("/venues/{id}", deleteVenue.New(log, catalog))
		})
	})

	fs := http.FileServer(http.Dir(cfg.HTTPServer.StaticDir))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	index := filepath.Join(cfg.HTTPServer.StaticDir, "index.html")
	for _, route := range spaRoutes {
		router.Get(route, func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, index)
		})
	}

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	watchCtx, stopWatch := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sessions.Watch(watchCtx, cfg.Session.PollInterval)
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	stopWatch()
	wg.Wait()

	log.Info("application stopped")

	if closer != nil {
		if err = closer(); err != nil {
			log.Error("failed to close redis connection", sl.Err(err))
		}

		log.Info("redis connection closed")
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
