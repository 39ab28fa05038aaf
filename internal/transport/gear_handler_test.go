package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gear-rental/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGearTestRouter() (chi.Router, *mockGearRepository) {
	gearRepo := newMockGearRepository()
	handler := NewGearHandler(service.NewCatalogService(gearRepo), zap.NewNop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, gearRepo
}

func TestGearCreateListRoundTrip(t *testing.T) {
	router, _ := newGearTestRouter()

	w := postJSON(t, router, "/api/gear", map[string]any{
		"title":         "Alpine Tent",
		"price_per_day": 10,
		"category":      "tenda",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created CreateGearResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/gear", nil)
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code)

	// Inspect the raw payload: the identifier must appear as a plain
	// string id, never under its storage-native name.
	var raw struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &raw))
	require.Len(t, raw.Items, 1)

	item := raw.Items[0]
	assert.Equal(t, created.ID, item["id"])
	assert.NotContains(t, item, "_id")
	assert.Equal(t, "Alpine Tent", item["title"])
	assert.Equal(t, 10.0, item["price_per_day"])
	assert.Equal(t, "tenda", item["category"])
	assert.Equal(t, 1.0, item["stock"])
	assert.Equal(t, 4.8, item["rating"])
}

func TestCreateGear_Validation(t *testing.T) {
	router, _ := newGearTestRouter()

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"missing title", map[string]any{"price_per_day": 10, "category": "tenda"}},
		{"missing category", map[string]any{"title": "Tent", "price_per_day": 10}},
		{"missing price", map[string]any{"title": "Tent", "category": "tenda"}},
		{"negative price", map[string]any{"title": "Tent", "price_per_day": -5, "category": "tenda"}},
		{"rating out of range", map[string]any{"title": "Tent", "price_per_day": 10, "category": "tenda", "rating": 5.5}},
		{"negative stock", map[string]any{"title": "Tent", "price_per_day": 10, "category": "tenda", "stock": -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/gear", tc.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateGear_ExplicitZeroPriceIsValid(t *testing.T) {
	router, _ := newGearTestRouter()

	w := postJSON(t, router, "/api/gear", map[string]any{
		"title":         "Loaner Tent",
		"price_per_day": 0,
		"category":      "tenda",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestListGear_CategoryFilter(t *testing.T) {
	router, _ := newGearTestRouter()

	for _, category := range []string{"tenda", "tenda", "carrier"} {
		w := postJSON(t, router, "/api/gear", map[string]any{
			"title":         "gear",
			"price_per_day": 5,
			"category":      category,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/gear?category=tenda", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp GearListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	for _, item := range resp.Items {
		assert.Equal(t, "tenda", item.Category)
	}
}

func TestListGear_InvalidLimit(t *testing.T) {
	router, _ := newGearTestRouter()

	for _, limit := range []string{"0", "-1", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/gear?limit="+limit, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
	}
}
