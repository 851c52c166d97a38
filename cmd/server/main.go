// @title Invitation Service API
// @version 1.0
// @description Create, retrieve, update and delete invitees on an in-memory invitation list.
// @license.name MIT
// @host localhost:8000
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"invitationservice/config"
	"invitationservice/docs"
	"invitationservice/internal/adapters/email"
	deliveryhttp "invitationservice/internal/delivery/http"
	"invitationservice/internal/delivery/http/controllers"
	"invitationservice/internal/delivery/http/middleware"
	"invitationservice/internal/repository/memory"
	"invitationservice/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, renderer, logger)

	store := memory.NewStore()
	inviteeRepo := memory.NewInviteeRepository(store)
	invitationService := services.NewInvitationService(inviteeRepo, emailService, cfg.PublicURL, logger)
	invitationController := controllers.NewInvitationController(logger, invitationService)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	docs.SwaggerInfo.Host = cfg.Addr()
	router := deliveryhttp.NewRouter(invitationController, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = metrics.Middleware(handler)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	logger.Info("server listening", "addr", ln.Addr().String(), "env", cfg.Environment)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if cfg.OpenBrowser {
		landing := "http://" + cfg.Addr() + "/"
		if err := openBrowser(landing); err != nil {
			logger.Warn("could not open browser", "url", landing, "err", err)
		}
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
