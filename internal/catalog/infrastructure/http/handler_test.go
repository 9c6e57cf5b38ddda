package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentshop/marketplace-service/internal/catalog/application"
	"github.com/agentshop/marketplace-service/internal/catalog/domain"
	"github.com/agentshop/marketplace-service/internal/catalog/infrastructure/memory"
)

func newTestRouter() http.Handler {
	repo := memory.NewRepository([]domain.Item{
		{ID: "1", Name: "iPhone 14 Pro Max", Description: "Brand new", PriceBTC: 0.025, PriceETH: 0.45, PriceUSDT: 800, Available: true},
		{ID: "2", Name: "MacBook Air M2", Description: "2023 model", PriceBTC: 0.035, PriceETH: 0.65, PriceUSDT: 1100, Available: true},
		{ID: "3", Name: "AirPods Pro 2", Description: "USB-C", PriceBTC: 0.007, PriceETH: 0.12, PriceUSDT: 220, Available: false},
	})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(log, application.NewService(repo)).Register(r)
	return r
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListMarketplaceItems(t *testing.T) {
	t.Parallel()

	rec := postJSON(t, newTestRouter(), "/list-marketplace-items", "{}")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []struct {
			ID        string  `json:"id"`
			Available bool    `json:"available"`
			PriceETH  float64 `json:"priceETH"`
		} `json:"items"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "1", resp.Items[0].ID)
	assert.Equal(t, "2", resp.Items[1].ID)
	assert.Equal(t, 0.65, resp.Items[1].PriceETH)
	assert.Equal(t, "Found 2 items available for purchase", resp.Message)
}

func TestGetItemDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantFound  bool
		wantName   string
		wantInBody string
	}{
		{
			name:      "exact id",
			body:      `{"itemIdentifier":"1"}`,
			wantFound: true,
			wantName:  "iPhone 14 Pro Max",
		},
		{
			name:      "case-insensitive name substring",
			body:      `{"itemIdentifier":"macbook"}`,
			wantFound: true,
			wantName:  "MacBook Air M2",
		},
		{
			name:       "not found is a structured response",
			body:       `{"itemIdentifier":"nintendo"}`,
			wantFound:  false,
			wantInBody: `"item":null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, newTestRouter(), "/get-item-details", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Found bool `json:"found"`
				Item  *struct {
					Name string `json:"name"`
				} `json:"item"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, tt.wantFound, resp.Found)
			if tt.wantFound {
				require.NotNil(t, resp.Item)
				assert.Equal(t, tt.wantName, resp.Item.Name)
			} else {
				assert.Nil(t, resp.Item)
			}
			if tt.wantInBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantInBody)
			}
		})
	}
}

func TestGetItemDetails_InvalidBody(t *testing.T) {
	t.Parallel()

	rec := postJSON(t, newTestRouter(), "/get-item-details", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
