package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/cplinktech/storefront/internal/adapter/handler"
	"github.com/cplinktech/storefront/internal/adapter/payment"
	"github.com/cplinktech/storefront/internal/config"
	"github.com/cplinktech/storefront/internal/core/service"
	"github.com/cplinktech/storefront/internal/logger"
	"github.com/cplinktech/storefront/internal/port"
	"github.com/cplinktech/storefront/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	log, err := logger.New(cfg.LogLevel, false)
	if err != nil {
		config.Exitf("logger: %v", err)
	}
	defer log.Sync()

	shutdownTracing, err := tracing.Init(cfg.TraceStdout, os.Stdout)
	if err != nil {
		log.Fatal("failed to init tracing", zap.Error(err))
	}

	// Initialize payment gateway
	var gateway port.PaymentGateway
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey, nil)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, checkout sessions will answer 500")
	}

	// Initialize services
	sessions := service.NewSessionService(gateway, service.SessionConfig{
		Currency:      cfg.PaymentCurrency,
		DefaultOrigin: cfg.DefaultOrigin(),
	}, log)
	photos := service.NewPhotoLister(cfg.PhotosDir)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(sessions)
	grpcHandler.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		log.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(sessions, photos, cfg.StaticDir, log)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           httpHandler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr()))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Stop HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown", zap.Error(err))
	}
	log.Info("HTTP server stopped")

	// Stop gRPC server
	grpcHandler.Shutdown()
	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("flush traces", zap.Error(err))
	}
}
