package recommendation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confiance/investment-api/pkg/middleware"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	service := NewService(setupTestDB(t), cfg)
	handlers := NewGinHandlers(service, cfg)

	router := gin.New()
	router.Use(middleware.UserID())

	group := router.Group("/api/v1/recommendations")
	group.POST("", handlers.CreateHandler())
	group.GET("", handlers.ListHandler())
	group.GET("/filter", handlers.FilterHandler())
	group.GET("/open", handlers.OpenHandler())
	group.GET("/date-range", handlers.DateRangeHandler())
	group.GET("/market/:market", handlers.MarketHandler())
	group.GET("/ticker/:symbol", handlers.TickerHandler())
	group.GET("/:id", handlers.GetHandler())
	group.PUT("/:id", handlers.UpdateHandler())
	group.DELETE("/:id", handlers.DeleteHandler())

	return router, service
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{
		"market":        "NSE",
		"currency":      "INR",
		"ticker_symbol": "infy",
		"trade_type":    "BUY",
		"entry_price":   100,
		"target_price":  120,
		"stop_loss":     90,
	}

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommendations", body, map[string]string{"X-User-Id": "7"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Recommendation created successfully", env.Message)

	var resp Response
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "INFY", resp.TickerSymbol)
	assert.Equal(t, "2.00", resp.RiskRewardRatio.Decimal.StringFixed(2))
	require.NotNil(t, resp.CreatedByUserID)
	assert.Equal(t, int64(7), *resp.CreatedByUserID)
}

func TestCreateHandlerValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{
		"market":        "NSE",
		"currency":      "INR",
		"ticker_symbol": "infy",
		"trade_type":    "BUY",
		// entry_price missing
	}

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/recommendations", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "entry price")
}

func TestGetHandlerNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/recommendations/42", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Contains(t, env.Error.Message, "Recommendation not found with id: '42'")
}

func TestUpdateHandlerPartial(t *testing.T) {
	router, service := setupTestRouter(t)

	created, err := service.Create(validCreateRequest(), nil)
	require.NoError(t, err)

	w, env := doRequest(t, router, http.MethodPut, "/api/v1/recommendations/1", map[string]interface{}{
		"remarks": "trailing stop raised",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recommendation updated successfully", env.Message)

	var resp Response
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "trailing stop raised", resp.Remarks)
	assert.Equal(t, created.TickerSymbol, resp.TickerSymbol)
}

func TestDeleteHandler(t *testing.T) {
	router, service := setupTestRouter(t)

	created, err := service.Create(validCreateRequest(), nil)
	require.NoError(t, err)

	w, env := doRequest(t, router, http.MethodDelete, "/api/v1/recommendations/1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Recommendation deleted successfully", env.Message)

	_, err = service.GetByID(created.ID)
	assert.Error(t, err)
}

func TestFilterHandlerRejectsUnknownMarket(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/recommendations/filter?market=MOON", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "unknown market")
}

func TestListHandlerPagination(t *testing.T) {
	router, service := setupTestRouter(t)

	for i := 0; i < 3; i++ {
		_, err := service.Create(validCreateRequest(), nil)
		require.NoError(t, err)
	}

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/recommendations?page=0&size=2", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Content       []Response `json:"content"`
		TotalElements int64      `json:"total_elements"`
		TotalPages    int        `json:"total_pages"`
		First         bool       `json:"first"`
		Last          bool       `json:"last"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)
}

func TestDateRangeHandlerRequiresDates(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/recommendations/date-range", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "start_date")
}
