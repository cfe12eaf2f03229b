package app

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

	"shirtpay/config"
	httpctrl "shirtpay/internal/controller/http"
	"shirtpay/internal/controller/http/handlers"
	"shirtpay/internal/domain/payment"
	"shirtpay/internal/external/cloudinary"
	"shirtpay/internal/external/razorpay"
	image_repo "shirtpay/internal/repo/image"
	"shirtpay/pkg/health"
	"shirtpay/pkg/logger"
	"shirtpay/pkg/mongodb"
)

const shutdownTimeout = 10 * time.Second

func Run(cfg config.Config) {
	logger.Setup(logger.Options{Level: cfg.LogLevel})
	log := slog.Default()

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := mongodb.Connect(cfg.MongoURL)
	if err != nil {
		log.Error("app - Run - mongodb.Connect", "error", err)
		os.Exit(1)
	}
	log.Info("Connected to MongoDB")

	imageRepo := image_repo.NewMongoImageRepo(client.Database(cfg.MongoDB))

	gatewayClient := razorpay.New(
		cfg.RazorpayBaseURL,
		cfg.RazorpayKeyID,
		cfg.RazorpayKeySecret,
		&http.Client{Timeout: cfg.HTTPRazorpayClientTimeout},
	)
	mediaClient := cloudinary.New(
		cfg.CloudinaryBaseURL,
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		&http.Client{Timeout: cfg.HTTPCloudinaryClientTimeout},
	)

	paymentService := payment.NewService(gatewayClient, mediaClient, imageRepo, log)

	orderHandler := handlers.NewOrderHandler(paymentService)
	captureHandler := handlers.NewCaptureHandler(paymentService)
	keyHandler := handlers.NewKeyHandler(cfg.RazorpayKeyID)

	healthRegistry := health.NewRegistry(health.NewMongoChecker(client))

	engine := NewGinEngine()
	router := httpctrl.NewRouter(orderHandler, captureHandler, keyHandler, healthRegistry)
	router.SetUp(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		log.Info("Server running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info("Shutting down gracefully...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown", "error", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect", "error", err)
	}
}
