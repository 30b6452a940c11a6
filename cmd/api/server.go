package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"claims_service/internal/adapter/http/handlers"
	"claims_service/internal/adapter/http/routes"
	"claims_service/internal/domain/entities"
	"claims_service/internal/infrastructure/config"
	"claims_service/internal/infrastructure/logger"
	"claims_service/internal/infrastructure/messaging"
	"claims_service/internal/infrastructure/payments"
	"claims_service/internal/usecase"
	"claims_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	for _, t := range cfg.PrestationTypes() {
		entities.RegisterPrestationType(entities.PrestationType(t))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStores(ctx, cfg, log)
	cancel()
	if err != nil {
		return err
	}
	defer st.close()

	publisher, closePublisher := newPublisher(cfg, log)
	defer closePublisher()

	claimUseCase := usecase.NewClaimUseCase(st.claims, usecase.ClaimUseCaseConfig{
		Beneficiaries: st.beneficiaries,
		Providers:     st.providers,
		Catalog:       st.catalog,
		Publisher:     publisher,
		Logger:        log,
	})
	settlementUseCase := usecase.NewSettlementUseCase(st.settlements, st.claims, publisher, log)
	paymentUseCase := usecase.NewRemainderPaymentUseCase(st.payments, st.settlements, newPaymentGateway(cfg, log), usecase.RemainderPaymentConfig{
		MockMode:         cfg.PaymentGatewayMockEnabled(),
		CurrencyExponent: cfg.CurrencyExponent,
		AccessToken:      cfg.MercadoPagoAccessToken,
		TestPayerEmail:   cfg.MercadoPagoPayerEmail,
		TestPayerUserID:  cfg.MercadoPagoPayerUserID,
	}, log)

	router := routes.NewRouter(routes.Handlers{
		Claims:      handlers.NewClaimHandler(claimUseCase, log),
		Settlements: handlers.NewSettlementHandler(settlementUseCase, log),
		Payments:    handlers.NewRemainderPaymentHandler(paymentUseCase, log),
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("[server] listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("[server] failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("[server] shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("[server] stopped")
	return nil
}

// newPublisher falls back to dropping events when RabbitMQ is not configured or unreachable.
func newPublisher(cfg *config.Config, log *zap.Logger) (interfaces.IEventPublisher, func()) {
	if cfg.RabbitMQURL == "" {
		log.Info("[events] RABBITMQ_URL not set, events are dropped")
		return messaging.NoopPublisher{Log: log}, func() {}
	}
	p, err := messaging.DialRabbitMQ(cfg.RabbitMQURL, cfg.EventsQueue, log)
	if err != nil {
		log.Warn("[events] rabbitmq unavailable, events are dropped", zap.Error(err))
		return messaging.NoopPublisher{Log: log}, func() {}
	}
	return p, func() { _ = p.Close() }
}

func newPaymentGateway(cfg *config.Config, log *zap.Logger) interfaces.IPaymentGateway {
	if cfg.PaymentGatewayMockEnabled() {
		log.Info("[payment][gateway] mock mode enabled")
		return nil
	}
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, log)
	if err != nil {
		log.Warn("[payment][gateway] Mercado Pago gateway not configured", zap.Error(err))
		return nil
	}
	return gw
}
