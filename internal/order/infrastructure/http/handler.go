package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	catalogdomain "github.com/agentshop/marketplace-service/internal/catalog/domain"
	"github.com/agentshop/marketplace-service/internal/order/application"
	"github.com/agentshop/marketplace-service/internal/order/domain"
	paymentdomain "github.com/agentshop/marketplace-service/internal/payment/domain"
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
		tracer:  otel.Tracer("order-http"),
	}
}

// Register attaches the order tools to the shared tool router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/create-order", h.createOrder)
	r.Post("/confirm-payment", h.confirmPayment)
	r.Post("/check-order-status", h.checkOrderStatus)
}

type createOrderRequest struct {
	ItemID     string `json:"itemId"`
	CryptoType string `json:"cryptoType"`
	UserName   string `json:"userName"`
}

type createOrderResponse struct {
	Success       bool     `json:"success"`
	OrderID       *string  `json:"orderId"`
	ItemName      *string  `json:"itemName"`
	Amount        *float64 `json:"amount"`
	CryptoType    *string  `json:"cryptoType"`
	WalletAddress *string  `json:"walletAddress"`
	Message       string   `json:"message"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	crypto, err := paymentdomain.ParseCrypto(req.CryptoType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.Create(ctx, application.CreateInput{
		ItemID:   req.ItemID,
		Crypto:   crypto,
		UserName: req.UserName,
	})

	w.Header().Set("Content-Type", "application/json")
	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound), errors.Is(err, catalogdomain.ErrItemUnavailable):
		_ = json.NewEncoder(w).Encode(createOrderResponse{
			Success: false,
			Message: "Item not found or sold out",
		})
		return
	case err != nil:
		h.log.Error("create order failed", "item_id", req.ItemID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	o := res.Order
	cryptoStr := string(o.Crypto)
	h.log.Info("order created", "order_id", o.ID, "item_id", o.ItemID, "crypto", cryptoStr)
	_ = json.NewEncoder(w).Encode(createOrderResponse{
		Success:       true,
		OrderID:       &o.ID,
		ItemName:      &o.ItemName,
		Amount:        &o.Amount,
		CryptoType:    &cryptoStr,
		WalletAddress: &res.WalletAddress,
		Message: fmt.Sprintf("Order created! Send %s %s to: %s. Order ID: %s",
			formatAmount(o.Amount), o.Crypto, res.WalletAddress, o.ID),
	})
}

type confirmPaymentRequest struct {
	OrderID   string `json:"orderId"`
	AdminCode string `json:"adminCode"`
}

type confirmPaymentResponse struct {
	Success  bool    `json:"success"`
	OrderID  *string `json:"orderId"`
	ItemName *string `json:"itemName"`
	Location *string `json:"location"`
	Message  string  `json:"message"`
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ConfirmPayment")
	defer span.End()

	var req confirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	order, err := h.service.Confirm(ctx, application.ConfirmInput{
		OrderID:   req.OrderID,
		AdminCode: req.AdminCode,
	})

	w.Header().Set("Content-Type", "application/json")
	switch {
	case errors.Is(err, domain.ErrWrongAdminCode):
		h.log.Warn("confirm payment rejected", "order_id", req.OrderID)
		_ = json.NewEncoder(w).Encode(confirmPaymentResponse{
			Success: false,
			Message: "Wrong admin code! Only owner can confirm payments.",
		})
		return
	case errors.Is(err, domain.ErrOrderNotFound):
		_ = json.NewEncoder(w).Encode(confirmPaymentResponse{
			Success: false,
			Message: "Order not found",
		})
		return
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		_ = json.NewEncoder(w).Encode(confirmPaymentResponse{
			Success: false,
			Message: "Order already confirmed",
		})
		return
	case err != nil:
		h.log.Error("confirm payment failed", "order_id", req.OrderID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.log.Info("payment confirmed", "order_id", order.ID, "item_id", order.ItemID)
	_ = json.NewEncoder(w).Encode(confirmPaymentResponse{
		Success:  true,
		OrderID:  &order.ID,
		ItemName: &order.ItemName,
		Location: &order.PickupLocation,
		Message:  fmt.Sprintf("Payment confirmed! Pickup at: %s", order.PickupLocation),
	})
}

type checkOrderStatusRequest struct {
	OrderID string `json:"orderId"`
}

type checkOrderStatusResponse struct {
	Found    bool    `json:"found"`
	Status   *string `json:"status"`
	ItemName *string `json:"itemName"`
	Location *string `json:"location"`
	Message  string  `json:"message"`
}

func (h *Handler) checkOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CheckOrderStatus")
	defer span.End()

	var req checkOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	order, err := h.service.Status(ctx, req.OrderID)

	w.Header().Set("Content-Type", "application/json")
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		_ = json.NewEncoder(w).Encode(checkOrderStatusResponse{
			Found:   false,
			Message: "Order not found",
		})
		return
	case err != nil:
		h.log.Error("check order status failed", "order_id", req.OrderID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	status := string(order.Status)
	resp := checkOrderStatusResponse{
		Found:    true,
		Status:   &status,
		ItemName: &order.ItemName,
		Message:  "Order waiting... Admin needs to confirm payment.",
	}
	// The pickup location stays hidden until the order is confirmed.
	if order.Status == domain.StatusConfirmed {
		resp.Location = &order.PickupLocation
		resp.Message = fmt.Sprintf("Order confirmed! Pickup at: %s", order.PickupLocation)
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
