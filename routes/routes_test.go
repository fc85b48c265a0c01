package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaryssaDev/site-para-gueto-fya/config"
	"github.com/LaryssaDev/site-para-gueto-fya/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		JWTSecret:     "test-secret",
		AdminUsername: "admin",
		AdminPassword: "admin22",
		ShopPhone:     "11977809124",
	}

	r := gin.New()
	SetupRoutes(r, store.New(store.NewMemoryKV()), cfg)
	return r, cfg
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/admin/login", `{"username":"admin","password":"admin22"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/admin/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/login", `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := adminToken(t, r)
	w = doJSON(t, r, http.MethodGet, "/admin/orders", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	// add 5 pieces: 3 shirts + 2 caps
	w := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"1","size":"M","quantity":3}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"6","size":"U","quantity":2}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart/summary", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var summary struct {
		TotalItems      int     `json:"total_items"`
		DiscountPercent float64 `json:"discount_percent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 5, summary.TotalItems)
	assert.InDelta(t, 0.10, summary.DiscountPercent, 1e-9)

	body := `{"customer":{"name":"João da Silva","phone":"(11) 99999-9999","email":"joao@example.com"}}`
	w = doJSON(t, r, http.MethodPost, "/checkout", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OrderID     string `json:"order_id"`
		WhatsappURL string `json:"whatsapp_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.OrderID)
	assert.Contains(t, resp.WhatsappURL, "https://api.whatsapp.com/send/?")
	assert.Contains(t, resp.WhatsappURL, "phone=11977809124")

	// cart is gone after checkout
	w = doJSON(t, r, http.MethodGet, "/cart", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// approve it and see it hit the dashboard revenue
	token := adminToken(t, r)
	w = doJSON(t, r, http.MethodPut, "/admin/orders/"+resp.OrderID+"/status", `{"status":"approved"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/dashboard", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var dash struct {
		Stats struct {
			RevenueTotal float64 `json:"revenue_total"`
			MostSold     string  `json:"most_sold"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.InDelta(t, 337.473, dash.Stats.RevenueTotal, 1e-9)
	assert.Equal(t, "CAMISETA CHRONIC #1", dash.Stats.MostSold)
}

func TestProductManagement(t *testing.T) {
	r, _ := newTestRouter(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/admin/products",
		`{"name":"TOUCA CHRONIC","price":45,"category":"Chapéus","stock":10}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown category is rejected")

	w = doJSON(t, r, http.MethodPost, "/admin/products",
		`{"name":"TOUCA CHRONIC","price":45,"category":"Toucas","stock":10,"sizes":["U"]}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID     string   `json:"id"`
		Images []string `json:"images"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"https://via.placeholder.com/300"}, created.Images, "placeholder image when none given")

	w = doJSON(t, r, http.MethodGet, "/products/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/admin/products/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/products/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutRejectsMissingSize(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"1","quantity":1}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := `{"customer":{"name":"A","phone":"11","email":"a@b.com"}}`
	w = doJSON(t, r, http.MethodPost, "/checkout", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// A line added before any size was picked must stay reachable over HTTP:
// it can be given a size (unblocking checkout) or removed on its own.
func TestEmptySizeLineLifecycle(t *testing.T) {
	customer := `{"customer":{"name":"A","phone":"11","email":"a@b.com"}}`

	t.Run("assign a size, then check out", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"1","quantity":2}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodPost, "/checkout", customer, "")
		require.Equal(t, http.StatusBadRequest, w.Code, "size-less line blocks checkout")

		// empty size key → no ?size= value
		w = doJSON(t, r, http.MethodPatch, "/cart/1", `{"size":"M"}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		var cart []struct {
			SelectedSize string `json:"selectedSize"`
			Quantity     int    `json:"quantity"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
		require.Len(t, cart, 1)
		assert.Equal(t, "M", cart[0].SelectedSize)
		assert.Equal(t, 2, cart[0].Quantity)

		w = doJSON(t, r, http.MethodPost, "/checkout", customer, "")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("remove just that line", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"1","quantity":1}`, "")
		require.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"6","size":"U","quantity":1}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/cart/1", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/cart", "", "")
		var cart []struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
		require.Len(t, cart, 1, "only the size-less line is gone")
		assert.Equal(t, "6", cart[0].ID)
	})

	t.Run("sized line keyed via query", func(t *testing.T) {
		r, _ := newTestRouter(t)

		w := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":"1","size":"M","quantity":1}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodPatch, "/cart/1?size=M", `{"quantity_delta":2}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/cart/1?size=M", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/cart", "", "")
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestAdminTokenAcceptedViaQueryParam(t *testing.T) {
	r, _ := newTestRouter(t)
	token := adminToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/admin/dashboard?token="+token, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/dashboard?token=not-a-token", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
