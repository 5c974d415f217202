package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/arsens-deals/storefront/internal/cart"
	"github.com/arsens-deals/storefront/internal/catalog"
	"github.com/arsens-deals/storefront/internal/config"
	"github.com/arsens-deals/storefront/internal/messaging"
	"github.com/arsens-deals/storefront/internal/notify"
	"github.com/arsens-deals/storefront/internal/paypal"
	"github.com/arsens-deals/storefront/internal/pricing"
	"github.com/arsens-deals/storefront/internal/telemetry"
	"github.com/arsens-deals/storefront/internal/webhook"
)

const (
	serviceName    = "storefront"
	serviceVersion = "0.1.0"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	providers, err := telemetry.Setup(ctx, serviceName, serviceVersion)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() { _ = providers.Shutdown(ctx) }()

	if err := runtime.Start(); err != nil {
		logger.Error("failed to start runtime instrumentation", "error", err)
		os.Exit(1)
	}

	var catalogStore catalog.Store
	if cfg.PostgresURL != "" {
		db, err := telemetry.OpenDB("postgres", cfg.PostgresURL)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()

		if err := db.Ping(); err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		catalogStore = catalog.NewPostgresStore(db)
		logger.Info("using postgres catalog store")
	} else {
		catalogStore = catalog.NewMemoryStore(catalog.DemoProducts()...)
		logger.Info("using in-memory catalog store with demo seed")
	}

	var producer *messaging.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = messaging.NewProducer(cfg.KafkaBrokers, messaging.PaymentCapturedTopic)
		defer func() { _ = producer.Close() }()
	}

	httpClient := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	paypalClient := paypal.NewClient(cfg.PayPalEnv, cfg.PayPalClientID, cfg.PayPalClientSecret, cfg.PayPalWebhookID, httpClient)
	notifier := notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom, cfg.AdminPhone, httpClient, logger)

	seen := webhook.NewSeenStore(webhook.SeenTTL)
	defer func() { _ = seen.Close() }()

	engine := pricing.NewEngine(cfg.Markup)
	catalogHandler := catalog.NewHandler(catalogStore, engine, cfg.AdminPassword, logger)
	cartHandler := cart.NewHandler(cart.NewStore(), catalogStore, engine, logger)

	var publisher webhook.Publisher
	if producer != nil {
		publisher = producer
	}
	webhookHandler := webhook.NewHandler(paypalClient, notifier, publisher, seen, logger)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", providers.MetricsHandler)
	mux.HandleFunc("GET /health", telemetry.WithHTTPRoute(webhookHandler.HandleHealth))
	mux.HandleFunc("POST /webhooks/paypal", telemetry.WithHTTPRoute(webhookHandler.HandlePayPal))
	mux.HandleFunc("GET /products", telemetry.WithHTTPRoute(catalogHandler.HandleList))
	mux.HandleFunc("POST /products", telemetry.WithHTTPRoute(catalogHandler.HandleCreate))
	mux.HandleFunc("DELETE /products/{id}", telemetry.WithHTTPRoute(catalogHandler.HandleRemove))
	mux.HandleFunc("POST /carts", telemetry.WithHTTPRoute(cartHandler.HandleCreate))
	mux.HandleFunc("GET /carts/{id}", telemetry.WithHTTPRoute(cartHandler.HandleGet))
	mux.HandleFunc("POST /carts/{id}/items", telemetry.WithHTTPRoute(cartHandler.HandleAddItem))
	mux.HandleFunc("DELETE /carts/{id}/items/{index}", telemetry.WithHTTPRoute(cartHandler.HandleRemoveItem))
	mux.HandleFunc("DELETE /carts/{id}", telemetry.WithHTTPRoute(cartHandler.HandleClear))

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: otelhttp.NewHandler(mux, serviceName,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				if r.Pattern != "" {
					return r.Pattern
				}
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting storefront service", "port", cfg.Port, "paypal_env", cfg.PayPalEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}
