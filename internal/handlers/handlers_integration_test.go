package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"servermart/internal/handlers"
	"servermart/internal/models"
	"servermart/internal/repositories"
	"servermart/internal/services"
	"servermart/pkg/recorder"
)

// testStore wires the full HTTP surface against an in-memory sqlite catalog
// seeded with the default storefront data, the way the production wiring does
// with postgres.
type testStore struct {
	app      *fiber.App
	orders   *repositories.OrderLog
	recorded *atomic.Int64
}

func setupStore(t *testing.T) *testStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductImage{}))

	catalogRepo := repositories.NewGORMCatalogRepository(db)
	require.NoError(t, catalogRepo.Seed(repositories.DefaultProducts(), repositories.DefaultCategories()))

	var recorded atomic.Int64
	recorderServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		recorded.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(recorderServer.Close)

	orderLog := repositories.NewOrderLog()
	catalogService := services.NewCatalogService(catalogRepo)
	checkoutService := services.NewCheckoutService(catalogRepo, repositories.NewMemorySessionStore())
	orderService := services.NewOrderService(catalogRepo, orderLog, recorder.New(recorderServer.URL), nil)

	app := fiber.New()
	handlers.NewCatalogHandler(catalogService).RegisterRoutes(app.Group("/api/v1"))
	handlers.NewCheckoutHandler(checkoutService, catalogService, orderService).RegisterRoutes(app.Group("/api"))

	return &testStore{app: app, orders: orderLog, recorded: &recorded}
}

func (s *testStore) request(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestCatalogEndpoints(t *testing.T) {
	store := setupStore(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp, err := store.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 15)

	status, product := store.request(t, http.MethodGet, "/api/v1/products/2", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "MVP Rank", product["name"])
	assert.InDelta(t, 19.99, product["price"].(float64), 1e-9)

	status, missing := store.request(t, http.MethodGet, "/api/v1/products/9999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product Not Found", missing["message"])
	assert.Equal(t, "The product you're looking for doesn't exist.", missing["detail"])
	assert.Equal(t, "/", missing["store_url"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	resp, err = store.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&categories))
	assert.Len(t, categories, 5)
}

func TestCheckoutFlow_BuyNow(t *testing.T) {
	store := setupStore(t)

	status, session := store.request(t, http.MethodPost, "/api/checkout/start", fiber.Map{"product_id": 2})
	require.Equal(t, http.StatusCreated, status)
	id := session["id"].(string)
	assert.Equal(t, "cart", session["stage"])
	assert.Equal(t, false, session["in_checkout"])
	assert.Equal(t, "MVP Rank", session["product_name"])
	assert.Equal(t, "Ranks", session["category"])
	assert.Equal(t, "19.99", session["total"])

	status, session = store.request(t, http.MethodPut, "/api/checkout/"+id+"/quantity", fiber.Map{"quantity": 3})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), session["quantity"])
	assert.Equal(t, "59.97", session["total"])

	// Out-of-range quantity leaves the session untouched.
	status, session = store.request(t, http.MethodPut, "/api/checkout/"+id+"/quantity", fiber.Map{"quantity": 11})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), session["quantity"])

	status, session = store.request(t, http.MethodPost, "/api/checkout/"+id+"/enter", fiber.Map{"entry": "buy_now"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "username", session["stage"])
	assert.Equal(t, true, session["in_checkout"])

	status, session = store.request(t, http.MethodPost, "/api/checkout/"+id+"/username", fiber.Map{"username": "Steve"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "delivery", session["stage"])

	status, session = store.request(t, http.MethodPost, "/api/checkout/"+id+"/delivery", fiber.Map{
		"full_name":   "Steve Miner",
		"email":       "steve@example.com",
		"address":     "1 Creeper Lane",
		"city":        "Blockville",
		"postal_code": "12345",
		"country":     "Overworld",
		"phone":       "555-0100",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "payment", session["stage"])

	status, session = store.request(t, http.MethodPost, "/api/checkout/"+id+"/payment", fiber.Map{
		"card_number":  "4242424242424242",
		"expiry":       "12/30",
		"cvc":          "123",
		"name_on_card": "Steve Miner",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "payment", session["stage"], "card submission alone must not advance the stage")

	status, session = store.request(t, http.MethodPost, "/api/checkout/"+id+"/complete", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "confirmation", session["stage"])
	assert.Equal(t, "59.97", session["total"], "total must not drift across stages")

	buyer := session["buyer"].(map[string]interface{})
	assert.Equal(t, "Steve", buyer["username"])
	assert.Equal(t, "steve@example.com", buyer["email"])
}

func TestCheckoutFlow_BackPreservesInput(t *testing.T) {
	store := setupStore(t)

	_, session := store.request(t, http.MethodPost, "/api/checkout/start", fiber.Map{"product_id": 1})
	id := session["id"].(string)

	store.request(t, http.MethodPost, "/api/checkout/"+id+"/enter", fiber.Map{"entry": "buy_now"})
	store.request(t, http.MethodPost, "/api/checkout/"+id+"/username", fiber.Map{"username": "Alex"})

	status, session := store.request(t, http.MethodPost, "/api/checkout/"+id+"/back", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "username", session["stage"])

	status, session = store.request(t, http.MethodPost, "/api/checkout/"+id+"/back", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cart", session["stage"])
	assert.Equal(t, false, session["in_checkout"])

	buyer := session["buyer"].(map[string]interface{})
	assert.Equal(t, "Alex", buyer["username"], "rewinding must not discard entered data")

	status, body := store.request(t, http.MethodPost, "/api/checkout/"+id+"/back", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Invalid checkout stage transition", body["message"])
}

func TestCheckoutCancel(t *testing.T) {
	store := setupStore(t)

	_, session := store.request(t, http.MethodPost, "/api/checkout/start", fiber.Map{"product_id": 1})
	id := session["id"].(string)

	status, body := store.request(t, http.MethodDelete, "/api/checkout/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Checkout cancelled", body["message"])

	status, body = store.request(t, http.MethodGet, "/api/checkout/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Checkout session not found", body["message"])

	status, _ = store.request(t, http.MethodDelete, "/api/checkout/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCheckoutStart_UnknownProduct(t *testing.T) {
	store := setupStore(t)

	status, body := store.request(t, http.MethodPost, "/api/checkout/start", fiber.Map{"product_id": 9999})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product Not Found", body["message"])
	assert.Equal(t, int64(0), store.recorded.Load())
}

func TestCheckoutStart_ComingSoon(t *testing.T) {
	store := setupStore(t)

	status, body := store.request(t, http.MethodPost, "/api/checkout/start", fiber.Map{"product_id": 15})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Coming Soon", body["message"])
}

func TestCheckoutFormAtWrongStage(t *testing.T) {
	store := setupStore(t)

	_, session := store.request(t, http.MethodPost, "/api/checkout/start", fiber.Map{"product_id": 1})
	id := session["id"].(string)

	status, body := store.request(t, http.MethodPost, "/api/checkout/"+id+"/delivery", fiber.Map{
		"full_name":   "Steve Miner",
		"email":       "steve@example.com",
		"address":     "1 Creeper Lane",
		"city":        "Blockville",
		"postal_code": "12345",
		"country":     "Overworld",
		"phone":       "555-0100",
	})

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Invalid checkout stage transition", body["message"])
}

func TestConfirm(t *testing.T) {
	store := setupStore(t)

	status, body := store.request(t, http.MethodPost, "/api/checkout/confirm", fiber.Map{
		"session_id": "sess_1714000000000",
		"customer": fiber.Map{
			"name":     "Steve Miner",
			"email":    "steve@example.com",
			"address":  "1 Creeper Lane",
			"city":     "Blockville",
			"username": "Steve",
		},
		"product": fiber.Map{
			"id":       1,
			"name":     "VIP Rank",
			"price":    9.99,
			"quantity": 2,
		},
	})

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	order := body["order"].(map[string]interface{})
	assert.Equal(t, "steve@example.com", order["customerEmail"])
	assert.Equal(t, "Steve", order["username"])
	assert.InDelta(t, 19.98, order["totalPaid"].(float64), 1e-9)

	items := order["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "VIP Rank", item["name"])
	assert.Equal(t, float64(2), item["quantity"])

	require.Len(t, store.orders.All(), 1)
	assert.Equal(t, int64(1), store.recorded.Load())
}

func TestConfirm_MissingSessionID(t *testing.T) {
	store := setupStore(t)

	status, body := store.request(t, http.MethodPost, "/api/checkout/confirm", fiber.Map{
		"customer": fiber.Map{"name": "Steve Miner", "email": "steve@example.com"},
		"product":  fiber.Map{"id": 1, "name": "VIP Rank", "price": 9.99, "quantity": 1},
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing session ID", body["error"])
	assert.Empty(t, store.orders.All())
	assert.Equal(t, int64(0), store.recorded.Load())
}

func TestConfirm_MalformedBody(t *testing.T) {
	store := setupStore(t)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/confirm", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := store.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "An error occurred processing your order", body["error"])
}

func TestConfirm_DuplicateSubmissionsLogTwoOrders(t *testing.T) {
	store := setupStore(t)

	for i := 0; i < 2; i++ {
		status, _ := store.request(t, http.MethodPost, "/api/checkout/confirm", fiber.Map{
			"session_id": fmt.Sprintf("sess_171400000000%d", i),
			"customer":   fiber.Map{"name": "Steve Miner", "email": "steve@example.com", "username": "Steve"},
			"product":    fiber.Map{"id": 1, "name": "VIP Rank", "price": 9.99, "quantity": 1},
		})
		require.Equal(t, http.StatusOK, status)
	}

	assert.Len(t, store.orders.All(), 2)
	assert.Len(t, store.orders.BySession("sess_1714000000000"), 1)
	assert.Len(t, store.orders.BySession("sess_1714000000001"), 1)
	assert.Equal(t, int64(2), store.recorded.Load())
}
