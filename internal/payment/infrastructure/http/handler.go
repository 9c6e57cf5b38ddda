package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentshop/marketplace-service/internal/payment/application"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("payment-http"),
	}
}

// Register attaches the payment tools to the shared tool router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/get-payment-info", h.getPaymentInfo)
}

type paymentInfoResponse struct {
	AcceptedCrypto []string          `json:"acceptedCrypto"`
	Wallets        map[string]string `json:"wallets"`
	Message        string            `json:"message"`
}

func (h *Handler) getPaymentInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetPaymentInfo")
	defer span.End()

	info, err := h.service.Info(ctx)
	if err != nil {
		h.log.Error("payment info failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := paymentInfoResponse{
		AcceptedCrypto: make([]string, 0, len(info.Accepted)),
		Wallets:        make(map[string]string, len(info.Wallets)),
		Message:        "We accept Bitcoin, Ethereum, and Tether",
	}
	for _, c := range info.Accepted {
		resp.AcceptedCrypto = append(resp.AcceptedCrypto, string(c))
	}
	for c, addr := range info.Wallets {
		resp.Wallets[string(c)] = addr
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
