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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"meetapp/internal/config"
	"meetapp/internal/http-server/handlers/file/uploadFile"
	"meetapp/internal/http-server/handlers/meetup/createMeetup"
	"meetapp/internal/http-server/handlers/meetup/deleteMeetup"
	"meetapp/internal/http-server/handlers/meetup/listMeetups"
	"meetapp/internal/http-server/handlers/meetup/updateMeetup"
	"meetapp/internal/http-server/handlers/subscription/createSubscription"
	"meetapp/internal/http-server/handlers/subscription/listSubscriptions"
	"meetapp/internal/http-server/handlers/user/createSession"
	"meetapp/internal/http-server/handlers/user/listUsers"
	"meetapp/internal/http-server/handlers/user/registerUser"
	"meetapp/internal/http-server/handlers/user/updateUser"
	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/http-server/middleware/mwlogger"
	libauth "meetapp/internal/lib/auth"
	"meetapp/internal/lib/logger/handlers/slogpretty"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/notifier"
	"meetapp/internal/service"
	"meetapp/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting meetapp", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err = redisClient.Ping(context.Background()).Err(); err != nil {
		log.Error("failed to connect to redis", sl.Err(err))
		os.Exit(1)
	}

	tokens := libauth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	publisher := notifier.NewPublisher(redisClient, log)
	mailer := notifier.NewSMTPMailer(&cfg.SMTP)

	hostname, _ := os.Hostname()
	worker := notifier.NewWorker(redisClient, mailer, log, hostname)

	userService := service.NewUserService(storage)
	fileService, err := service.NewFileService(storage, cfg.Uploads.Dir)
	if err != nil {
		log.Error("failed to init file service", sl.Err(err))
		os.Exit(1)
	}
	meetupService := service.NewMeetupService(storage, storage)
	subscriptionService := service.NewSubscriptionService(storage, storage, storage, publisher)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir(fileService.Dir()))
	router.Handle("/files/*", http.StripPrefix("/files/", fs))

	router.Post("/users", registerUser.New(log, userService))
	router.Get("/users", listUsers.New(log, userService))
	router.Post("/sessions", createSession.New(log, userService, tokens))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, tokens))

		r.Put("/users", updateUser.New(log, userService))
		r.Post("/files", uploadFile.New(log, fileService))

		r.Get("/meetups", listMeetups.New(log, meetupService))
		r.Post("/meetups", createMeetup.New(log, meetupService))
		r.Put("/meetups/{id}", updateMeetup.New(log, meetupService))
		r.Delete("/meetups/{id}", deleteMeetup.New(log, meetupService))

		r.Get("/subscription", listSubscriptions.New(log, subscriptionService))
		r.Post("/subscription", createSubscription.New(log, subscriptionService))
	})

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

	go func() {
		if err := worker.Run(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("notification worker stopped", sl.Err(err))
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if err = worker.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown notification worker", sl.Err(err))
	}

	log.Info("application stopped")

	if err = redisClient.Close(); err != nil {
		log.Error("failed to close redis connection", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
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
