package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/application/usecase"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/domain/port"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/infrastructure/events"
	"github.com/roothery/abi-gth-omnia-developer-evaluation/src/sales/infrastructure/persistence"
)

func newTestRouter(t *testing.T) (*gin.Engine, port.SaleRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := persistence.NewSaleMemoryRepository()
	publisher := events.NewNoopEventPublisher()
	logger := zaptest.NewLogger(t)

	saleCtrl := NewSaleController(
		usecase.NewCreateSaleUseCase(repo, publisher, logger),
		usecase.NewGetSaleUseCase(repo),
		usecase.NewListSalesUseCase(repo),
		usecase.NewUpdateSaleUseCase(repo, logger),
		usecase.NewCancelSaleUseCase(repo, publisher, logger),
		usecase.NewDeleteSaleUseCase(repo, publisher, logger),
		usecase.NewCreateSaleItemUseCase(repo, logger),
		usecase.NewGetSaleItemUseCase(repo),
		usecase.NewUpdateSaleItemUseCase(repo, logger),
		usecase.NewDeleteSaleItemUseCase(repo, logger),
		logger,
	)
	reportCtrl := NewReportController(usecase.NewDailyReportUseCase(repo), logger)

	router := gin.New()
	v1 := router.Group("/api/v1")
	saleCtrl.RegisterRoutes(v1)
	reportCtrl.RegisterRoutes(v1)

	return router, repo
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createSalePayload(number string) map[string]interface{} {
	return map[string]interface{}{
		"sale_number": number,
		"customer":    "retail",
		"branch":      "downtown",
		"items": []map[string]interface{}{
			{"product": "lager", "quantity": 10, "unit_price": "100"},
		},
	}
}

func TestSaleController_CreateSale(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/sales", createSalePayload("SALE-001"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SALE-001", resp["sale_number"])
	assert.Equal(t, "800", resp["total_amount"])
}

func TestSaleController_CreateSaleValidationErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := createSalePayload("AB")
	payload["customer"] = "unknown"

	w := doRequest(router, http.MethodPost, "/api/v1/sales", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 2)
}

func TestSaleController_CreateSaleConflict(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/sales", createSalePayload("SALE-001"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/sales", createSalePayload("SALE-001"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSaleController_CreateSaleQuantityGuard(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := createSalePayload("SALE-001")
	payload["items"] = []map[string]interface{}{
		{"product": "lager", "quantity": 21, "unit_price": "10"},
	}

	w := doRequest(router, http.MethodPost, "/api/v1/sales", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot sell more than 20 units")
}

func TestSaleController_GetSale(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/sales", createSalePayload("SALE-001"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(router, http.MethodGet, "/api/v1/sales/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/sales/6b3a9c5e-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/sales/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaleController_ListSales(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 1; i <= 5; i++ {
		w := doRequest(router, http.MethodPost, "/api/v1/sales",
			createSalePayload(fmt.Sprintf("SALE-%03d", i)))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/sales?page=1&page_size=2&sort_by=sale_number", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items      []json.RawMessage `json:"items"`
		TotalCount int               `json:"total_count"`
		TotalPages int               `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 5, resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)

	w = doRequest(router, http.MethodGet, "/api/v1/sales?branch=moon-base", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaleController_CancelSale(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/sales", createSalePayload("SALE-001"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(router, http.MethodPost, "/api/v1/sales/"+created.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		IsCancelled bool   `json:"is_cancelled"`
		TotalAmount string `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsCancelled)
	assert.Equal(t, "0", resp.TotalAmount)
}

func TestSaleController_DeleteSale(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/sales", createSalePayload("SALE-001"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(router, http.MethodDelete, "/api/v1/sales/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/sales/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaleController_SaleItemEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/sales", createSalePayload("SALE-001"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Items, 1)
	itemID := created.Items[0].ID

	w = doRequest(router, http.MethodGet, "/api/v1/sales/items/"+itemID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPut, "/api/v1/sales/items/"+itemID, map[string]interface{}{
		"product": "stout", "quantity": 4, "unit_price": "50",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Product  string `json:"product"`
		Discount string `json:"discount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "stout", updated.Product)
	assert.Equal(t, "20", updated.Discount)

	w = doRequest(router, http.MethodDelete, "/api/v1/sales/items/"+itemID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/sales/items/"+itemID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaleController_CreateSaleItem(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/sales", createSalePayload("SALE-001"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(router, http.MethodPost, "/api/v1/sales/"+created.ID+"/items", map[string]interface{}{
		"product": "stout", "quantity": 4, "unit_price": "50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item struct {
		SaleID   string `json:"sale_id"`
		Discount string `json:"discount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, created.ID, item.SaleID)
	assert.Equal(t, "20", item.Discount)

	// La venta queda con dos items
	w = doRequest(router, http.MethodGet, "/api/v1/sales/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sale struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	assert.Len(t, sale.Items, 2)

	// Venta inexistente
	w = doRequest(router, http.MethodPost,
		"/api/v1/sales/6b3a9c5e-0000-0000-0000-000000000000/items", map[string]interface{}{
			"product": "lager", "quantity": 1, "unit_price": "10",
		})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Cantidad fuera de límite
	w = doRequest(router, http.MethodPost, "/api/v1/sales/"+created.ID+"/items", map[string]interface{}{
		"product": "lager", "quantity": 21, "unit_price": "10",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportController_DailyReport(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/reports/daily", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/reports/daily?date=2026-13-99", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/reports/daily?date=2026-08-15", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date       string `json:"date"`
		SalesCount int    `json:"sales_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-08-15", resp.Date)
	assert.Zero(t, resp.SalesCount)
}
