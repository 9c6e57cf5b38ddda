package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentshop/marketplace-service/internal/catalog/application"
	"github.com/agentshop/marketplace-service/internal/catalog/domain"
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
		tracer:  otel.Tracer("catalog-http"),
	}
}

// Register attaches the catalog tools to the shared tool router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/list-marketplace-items", h.listItems)
	r.Post("/get-item-details", h.getItemDetails)
}

type itemPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceBTC    float64 `json:"priceBTC"`
	PriceETH    float64 `json:"priceETH"`
	PriceUSDT   float64 `json:"priceUSDT"`
	Available   bool    `json:"available"`
}

func toItemPayload(item domain.Item) itemPayload {
	return itemPayload{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		PriceBTC:    item.PriceBTC,
		PriceETH:    item.PriceETH,
		PriceUSDT:   item.PriceUSDT,
		Available:   item.Available,
	}
}

type listItemsResponse struct {
	Items   []itemPayload `json:"items"`
	Message string        `json:"message"`
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListMarketplaceItems")
	defer span.End()

	items, err := h.service.ListAvailable(ctx)
	if err != nil {
		h.log.Error("list items failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := listItemsResponse{
		Items:   make([]itemPayload, 0, len(items)),
		Message: fmt.Sprintf("Found %d items available for purchase", len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemPayload(item))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

type getItemDetailsRequest struct {
	ItemIdentifier string `json:"itemIdentifier"`
}

type getItemDetailsResponse struct {
	Found   bool         `json:"found"`
	Item    *itemPayload `json:"item"`
	Message string       `json:"message"`
}

func (h *Handler) getItemDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetItemDetails")
	defer span.End()

	var req getItemDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	item, err := h.service.Find(ctx, req.ItemIdentifier)
	if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
		h.log.Error("find item failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err != nil {
		_ = json.NewEncoder(w).Encode(getItemDetailsResponse{
			Found:   false,
			Item:    nil,
			Message: fmt.Sprintf("Item %q not found", req.ItemIdentifier),
		})
		return
	}

	payload := toItemPayload(item)
	_ = json.NewEncoder(w).Encode(getItemDetailsResponse{
		Found:   true,
		Item:    &payload,
		Message: fmt.Sprintf("Found item: %s", item.Name),
	})
}
