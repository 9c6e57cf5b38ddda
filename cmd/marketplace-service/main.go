package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agentshop/marketplace-service/internal/config"
	"github.com/agentshop/marketplace-service/pkg/logging"
	"github.com/agentshop/marketplace-service/pkg/shutdown"
	"github.com/agentshop/marketplace-service/pkg/tracing"

	catalogapp "github.com/agentshop/marketplace-service/internal/catalog/application"
	catalogdomain "github.com/agentshop/marketplace-service/internal/catalog/domain"
	cataloghttp "github.com/agentshop/marketplace-service/internal/catalog/infrastructure/http"
	catalogmem "github.com/agentshop/marketplace-service/internal/catalog/infrastructure/memory"
	orderapp "github.com/agentshop/marketplace-service/internal/order/application"
	orderhttp "github.com/agentshop/marketplace-service/internal/order/infrastructure/http"
	ordermem "github.com/agentshop/marketplace-service/internal/order/infrastructure/memory"
	paymentapp "github.com/agentshop/marketplace-service/internal/payment/application"
	paymentdomain "github.com/agentshop/marketplace-service/internal/payment/domain"
	paymenthttp "github.com/agentshop/marketplace-service/internal/payment/infrastructure/http"
	paymentmem "github.com/agentshop/marketplace-service/internal/payment/infrastructure/memory"
)

func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"))

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	tp, err := tracing.Init(ctx, "marketplace-service", cfg.OTLPEndpoint, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	// Stores
	catalogRepo := catalogmem.NewRepository(seedItems(cfg.Catalog))
	orderStore := ordermem.NewStore()
	wallets, err := paymentmem.NewWalletDirectory(seedWallets(cfg.Wallets))
	if err != nil {
		log.Error("wallet directory invalid", "err", err)
		os.Exit(1)
	}

	// Services
	catalogSvc := catalogapp.NewService(catalogRepo)
	paymentSvc := paymentapp.NewService(wallets)
	orderSvc := orderapp.NewService(orderStore, catalogSvc, paymentSvc, cfg.AdminCode)

	// HTTP server
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/tools", func(r chi.Router) {
		cataloghttp.NewHandler(log, catalogSvc).Register(r)
		orderhttp.NewHandler(log, orderSvc).Register(r)
		paymenthttp.NewHandler(log, paymentSvc).Register(r)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("marketplace-service shutdown complete")
}

func seedItems(items []config.Item) []catalogdomain.Item {
	out := make([]catalogdomain.Item, 0, len(items))
	for _, it := range items {
		out = append(out, catalogdomain.Item{
			ID:             it.ID,
			Name:           it.Name,
			Description:    it.Description,
			PriceBTC:       it.PriceBTC,
			PriceETH:       it.PriceETH,
			PriceUSDT:      it.PriceUSDT,
			Available:      it.Available,
			PickupLocation: it.PickupLocation,
		})
	}
	return out
}

func seedWallets(wallets map[string]string) map[paymentdomain.Crypto]string {
	out := make(map[paymentdomain.Crypto]string, len(wallets))
	for code, addr := range wallets {
		out[paymentdomain.Crypto(code)] = addr
	}
	return out
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
