package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/ledger_reconciler/internal/core/services"
	"github.com/SscSPs/ledger_reconciler/internal/handlers"
	"github.com/SscSPs/ledger_reconciler/internal/middleware"
	"github.com/SscSPs/ledger_reconciler/internal/platform/config"
	"github.com/SscSPs/ledger_reconciler/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledger_reconciler/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.NewSQLiteDB(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.MigrateSQLite(db, logger))

	cfg := &config.Config{
		IsProduction:       true,
		RateLimit:          "1000-M",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		MaxPageSize:        100,
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	require.NoError(t, handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(sqlite.NewRepositoryProvider(db))))

	return &apiClient{t: t, router: r}
}

func (a *apiClient) call(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	a.t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func (a *apiClient) create(name, date string, value float64) map[string]any {
	a.t.Helper()
	w, body := a.call(http.MethodPost, "/api/transactions", map[string]any{"name": name, "date": date, "value": value})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return body
}

func idPath(body map[string]any) string {
	return fmt.Sprintf("/api/transactions/%.0f", body["id"].(float64))
}

func TestAPI_PaymentAllocationFlow(t *testing.T) {
	api := newAPI(t)

	t100 := api.create("third", "2024-01-03T00:00:00Z", 100)
	t50 := api.create("first", "2024-01-01T00:00:00Z", 50)
	t75 := api.create("second", "2024-01-02T00:00:00Z", 75)

	w, _ := api.call(http.MethodPost, "/api/transactions/pay", map[string]any{"paymentValue": 130})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, w.Body.Len())

	for _, tc := range []struct {
		txn    map[string]any
		status string
		value  float64
	}{
		{t50, "PAID", 0},
		{t75, "PAID", 0},
		{t100, "PENDING", 100},
	} {
		w, body := api.call(http.MethodGet, idPath(tc.txn), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tc.status, body["status"], tc.txn["name"])
		assert.Equal(t, tc.value, body["value"], tc.txn["name"])
	}

	w, body := api.call(http.MethodGet, "/api/payments?status=PENDING", nil)
	require.Equal(t, http.StatusOK, w.Code)
	content := body["content"].([]any)
	require.Len(t, content, 1)
	assert.Equal(t, 5.0, content[0].(map[string]any)["value"])

	// A paid transaction is immutable.
	w, _ = api.call(http.MethodDelete, idPath(t50), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w, _ = api.call(http.MethodPut, idPath(t75), map[string]any{"name": "second", "date": "2024-01-02T00:00:00Z", "value": 1, "status": "PENDING"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The residual payment settles the next small transaction at creation.
	small := api.create("fourth", "2024-01-04T00:00:00Z", 2)
	assert.Equal(t, "PAID", small["status"])
	assert.Equal(t, 0.0, small["value"])
}

func TestAPI_FilterAndDates(t *testing.T) {
	api := newAPI(t)

	created := api.create("Alice", "2024-02-10T23:30:00-05:00", 10)
	assert.Equal(t, "2024-02-11T04:30:00Z", created["date"])
	api.create("Bob", "2024-02-10T12:00:00Z", 20)
	api.create("alicia", "2024-03-01T12:00:00Z", 30)

	w, body := api.call(http.MethodGet, "/api/transactions?name=ali&from=2024-02-01&to=2024-02-29", nil)
	require.Equal(t, http.StatusOK, w.Code)
	content := body["content"].([]any)
	require.Len(t, content, 1)
	assert.Equal(t, "Alice", content[0].(map[string]any)["name"])

	w, body = api.call(http.MethodGet, "/api/transactions?sort=value,asc&size=2&page=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["totalElements"])
	assert.EqualValues(t, 2, body["totalPages"])
	content = body["content"].([]any)
	require.Len(t, content, 1)
	assert.Equal(t, "alicia", content[0].(map[string]any)["name"])
}

func TestAPI_PageOutOfRange(t *testing.T) {
	api := newAPI(t)
	api.create("Alice", "2024-02-10T12:00:00Z", 10)

	for _, path := range []string{
		"/api/transactions?page=9223372036854775807&size=10",
		"/api/payments?page=9223372036854775807",
	} {
		w, body := api.call(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, body["error"], "out of range", path)
	}
}

func TestAPI_RejectedAndDeleted(t *testing.T) {
	api := newAPI(t)

	txn := api.create("refund", "2024-05-01T00:00:00Z", 40)
	w, body := api.call(http.MethodPut, idPath(txn), map[string]any{"name": "refund", "date": "2024-05-01T00:00:00Z", "value": 40, "status": "REJECTED"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "REJECTED", body["status"])

	// Rejected transactions are not paid by incoming funds.
	w, _ = api.call(http.MethodPost, "/api/transactions/pay", map[string]any{"paymentValue": 40})
	require.Equal(t, http.StatusOK, w.Code)
	_, body = api.call(http.MethodGet, idPath(txn), nil)
	assert.Equal(t, "REJECTED", body["status"])

	w, _ = api.call(http.MethodDelete, idPath(txn), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = api.call(http.MethodGet, idPath(txn), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_Health(t *testing.T) {
	api := newAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
