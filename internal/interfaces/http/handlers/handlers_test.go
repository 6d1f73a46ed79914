// internal/interfaces/http/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/menu-storefront/internal/config"
	"github.com/your-org/menu-storefront/internal/domain/menu"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
	"github.com/your-org/menu-storefront/internal/infrastructure/storage"
	"github.com/your-org/menu-storefront/internal/pkg/idgen"
)

const testCatalog = `[
  {
    "id": "hamburguesa-clasica",
    "name": "Hamburguesa Clásica",
    "category": "Hamburguesas",
    "basePrice": 15.0,
    "variants": [
      {
        "id": "tamano",
        "name": "Tamaño",
        "required": true,
        "options": [
          { "id": "simple", "name": "Simple", "price": 0 },
          { "id": "doble", "name": "Doble", "price": 6.0 }
        ]
      }
    ],
    "extras": [
      {
        "id": "toppings",
        "name": "Toppings",
        "maxSelect": 2,
        "options": [
          { "id": "queso", "name": "Queso extra", "price": 2.0 },
          { "id": "tocino", "name": "Tocino", "price": 3.0 },
          { "id": "huevo", "name": "Huevo frito", "price": 1.5 }
        ]
      }
    ]
  },
  {
    "id": "limonada-clasica",
    "name": "Limonada Clásica",
    "category": "Bebidas",
    "basePrice": 6.0
  }
]`

const testStorefrontConfig = `{
  "businessName": "La Esquina del Sabor",
  "whatsappNumber": "+51 999 888 777",
  "currency": "PEN",
  "deliveryFee": 5.0,
  "minOrder": 10.0,
  "hoursText": "Lun-Dom 12:00 - 22:00",
  "orderTypesEnabled": { "mesa": true, "pickup": true, "delivery": false }
}`

type testEnv struct {
	router  *gin.Engine
	catalog *menu.Service
	sf      *storefront.Service
	storage *storage.MemoryStore
	cfg     *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "menu.json")
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0o644))
	require.NoError(t, os.WriteFile(configPath, []byte(testStorefrontConfig), 0o644))

	catalog, err := menu.NewService(catalogPath)
	require.NoError(t, err)
	sf, err := storefront.NewService(configPath)
	require.NoError(t, err)

	cfg := &config.Config{
		Storefront: config.StorefrontConfig{
			CatalogPath:   catalogPath,
			ConfigPath:    configPath,
			CartKeyPrefix: "menu-cart",
		},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := storage.NewMemoryStore()
	gen := &idgen.Sequence{Prefix: "line"}

	menuHandler := NewMenuHandler(catalog, sf, cfg)
	cartHandler := NewCartHandler(catalog, sf, store, gen, cfg, logger)
	checkoutHandler := NewCheckoutHandler(sf, store, nil, cfg, logger)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/menu", menuHandler.GetMenu)
	api.GET("/menu/categories", menuHandler.GetCategories)
	api.GET("/menu/:id", menuHandler.GetMenuItem)
	api.GET("/cart", cartHandler.GetCart)
	api.POST("/cart/items", cartHandler.AddItem)
	api.PUT("/cart/items/:id", cartHandler.UpdateItem)
	api.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	api.DELETE("/cart", cartHandler.ClearCart)
	api.POST("/checkout/whatsapp", checkoutHandler.SubmitWhatsApp)

	return &testEnv{
		router:  router,
		catalog: catalog,
		sf:      sf,
		storage: store,
		cfg:     cfg,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "test-session")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetMenu(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	items := body["data"].([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	assert.Equal(t, "hamburguesa-clasica", first["id"])
	assert.Equal(t, 15.0, first["startingPrice"])
	assert.Equal(t, "S/ 15.00", first["startingPriceFormatted"])
}

func TestGetMenuByCategory(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/menu?category=Bebidas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "limonada-clasica", items[0].(map[string]interface{})["id"])
}

func TestGetMenuItemNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/menu/ghost", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Producto no encontrado.", decodeBody(t, w)["error"])
}

func TestGetCategories(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/menu/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	categories := decodeBody(t, w)["data"].([]interface{})
	assert.Equal(t, []interface{}{"Hamburguesas", "Bebidas"}, categories)
}

func TestAddItemToCart(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "hamburguesa-clasica",
		"quantity":   2,
		"variants":   gin.H{"tamano": "doble"},
		"extras":     gin.H{"toppings": []string{"queso"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["item_count"])
	assert.Equal(t, 46.0, data["subtotal"])
	assert.Equal(t, "S/ 46.00", data["subtotal_formatted"])

	line := data["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "line-1", line["cartItemId"])
	assert.Equal(t, 23.0, line["unitPrice"])
}

func TestAddItemMissingRequiredVariant(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "hamburguesa-clasica",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeBody(t, w)["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "Selecciona una opcion de Tamaño.", errs[0])
}

func TestAddItemBeyondExtraLimit(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "hamburguesa-clasica",
		"variants":   gin.H{"tamano": "simple"},
		"extras":     gin.H{"toppings": []string{"queso", "tocino", "huevo"}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeBody(t, w)["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "Maximo 2 seleccion(es).", errs[0])
}

func TestAddItemUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "ghost",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemTwiceKeepsDistinctLines(t *testing.T) {
	env := newTestEnv(t)
	body := gin.H{
		"product_id": "limonada-clasica",
	}

	env.do(t, http.MethodPost, "/api/v1/cart/items", body)
	w := env.do(t, http.MethodPost, "/api/v1/cart/items", body)
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 2.0, data["item_count"])
}

func TestUpdateCartItemPreservesID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "hamburguesa-clasica",
		"variants":   gin.H{"tamano": "simple"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/cart/items/line-1", gin.H{
		"product_id": "hamburguesa-clasica",
		"quantity":   3,
		"variants":   gin.H{"tamano": "doble"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["item_count"])

	line := data["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "line-1", line["cartItemId"])
	assert.Equal(t, 3.0, line["quantity"])
	assert.Equal(t, 63.0, line["lineTotal"])
}

func TestUpdateMissingCartItem(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/v1/cart/items/ghost", gin.H{
		"product_id": "limonada-clasica",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "El producto ya no esta en el carrito.", decodeBody(t, w)["error"])
}

func TestRemoveCartItemIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "limonada-clasica"})

	w := env.do(t, http.MethodDelete, "/api/v1/cart/items/line-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/cart/items/line-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["item_count"])
}

func TestClearCart(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "limonada-clasica"})
	env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "limonada-clasica"})

	w := env.do(t, http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["item_count"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/checkout/whatsapp", gin.H{
		"type":        "mesa",
		"tableNumber": "5",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Tu carrito esta vacio.", decodeBody(t, w)["error"])
}

func TestCheckoutMesa(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "hamburguesa-clasica",
		"quantity":   2,
		"variants":   gin.H{"tamano": "simple"},
	})

	w := env.do(t, http.MethodPost, "/api/v1/checkout/whatsapp", gin.H{
		"type":        "mesa",
		"tableNumber": "5",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 30.0, data["subtotal"])
	assert.Equal(t, 30.0, data["total"])

	message := data["whatsapp_message"].(string)
	assert.Contains(t, message, "*LA ESQUINA DEL SABOR*")
	assert.Contains(t, message, "📍 *Mesa:* 5")

	url := data["whatsapp_url"].(string)
	assert.Contains(t, url, "https://wa.me/51999888777?text=")
}

func TestCheckoutValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "limonada-clasica"})

	w := env.do(t, http.MethodPost, "/api/v1/checkout/whatsapp", gin.H{
		"type": "mesa",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeBody(t, w)["errors"].([]interface{})
	// Subtotal 6.00 is below the 10.00 minimum and the table is missing
	require.Len(t, errs, 2)
	assert.Equal(t, "El pedido minimo es S/ 10.00.", errs[0])
	assert.Equal(t, "Ingresa el numero de mesa.", errs[1])
}

func TestCheckoutDisabledOrderType(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "limonada-clasica"})

	w := env.do(t, http.MethodPost, "/api/v1/checkout/whatsapp", gin.H{
		"type":         "delivery",
		"deliveryName": "Ana",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Tipo de pedido no disponible.", decodeBody(t, w)["error"])
}

func TestCheckoutTableFromQueryOverridesWhenLocked(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "hamburguesa-clasica",
		"quantity":   2,
		"variants":   gin.H{"tamano": "simple"},
	})

	w := env.do(t, http.MethodPost, "/api/v1/checkout/whatsapp?mesa=12", gin.H{
		"type":        "mesa",
		"tableNumber": "7",
	})
	require.Equal(t, http.StatusOK, w.Code)

	message := decodeBody(t, w)["data"].(map[string]interface{})["whatsapp_message"].(string)
	assert.Contains(t, message, "📍 *Mesa:* 12")
}

func TestCartSessionIsolation(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "limonada-clasica"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", "another-session")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["item_count"])
	assert.Equal(t, "another-session", data["session_id"])
}

func TestNewSessionGetsCookie(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))

	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == "cart_session" && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}
