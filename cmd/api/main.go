package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/akashmongoosetech/shashank-backend/config"
	"github.com/akashmongoosetech/shashank-backend/internal/cache"
	"github.com/akashmongoosetech/shashank-backend/internal/email"
	appointmentHandler "github.com/akashmongoosetech/shashank-backend/internal/handler/appointment"
	blogHandler "github.com/akashmongoosetech/shashank-backend/internal/handler/blog"
	contactHandler "github.com/akashmongoosetech/shashank-backend/internal/handler/contact"
	"github.com/akashmongoosetech/shashank-backend/internal/handler/health"
	subscriberHandler "github.com/akashmongoosetech/shashank-backend/internal/handler/subscriber"
	"github.com/akashmongoosetech/shashank-backend/internal/middleware"
	"github.com/akashmongoosetech/shashank-backend/internal/repository/postgres"
	"github.com/akashmongoosetech/shashank-backend/internal/router"
	appointmentService "github.com/akashmongoosetech/shashank-backend/internal/service/appointment"
	blogService "github.com/akashmongoosetech/shashank-backend/internal/service/blog"
	contactService "github.com/akashmongoosetech/shashank-backend/internal/service/contact"
	subscriberService "github.com/akashmongoosetech/shashank-backend/internal/service/subscriber"
	"github.com/akashmongoosetech/shashank-backend/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	m := metrics.NewMetrics("clinic_api")

	mailer := email.NewMailer(cfg.SMTP, cfg.Clinic, m)

	blogCache := cache.NewNoop()
	if cfg.Redis.Addr != "" {
		blogCache, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
	}

	appointmentRepo := postgres.NewAppointmentRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	blogRepo := postgres.NewBlogRepository(db)
	subscriberRepo := postgres.NewSubscriberRepository(db)

	appointmentSvc := appointmentService.NewService(appointmentRepo, mailer, cfg.Appointments.StrictTransitions)
	contactSvc := contactService.NewService(contactRepo, mailer)
	blogSvc := blogService.NewService(blogRepo, blogCache)
	subscriberSvc := subscriberService.NewService(subscriberRepo, mailer)

	healthH := health.NewHandler(db, mailer)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	routerConfig := router.Config{CORSConfig: corsConfig}
	if cfg.Monitoring.PrometheusEnabled {
		routerConfig.MetricsPath = cfg.Monitoring.MetricsPath
	}
	if cfg.RateLimit.Enabled {
		routerConfig.RateLimit = middleware.RateLimiterConfig{
			RPS:   cfg.RateLimit.RequestsPerSecond,
			Burst: cfg.RateLimit.Burst,
		}
	}

	r := router.NewRouter(healthH, m, routerConfig,
		contactHandler.NewHandler(contactSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		blogHandler.NewHandler(blogSvc),
		subscriberHandler.NewHandler(subscriberSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
