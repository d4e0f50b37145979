package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appledger "github.com/ledger/backend/internal/application/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/infrastructure/auth"
	"github.com/ledger/backend/internal/infrastructure/cache"
	"github.com/ledger/backend/internal/infrastructure/config"
	"github.com/ledger/backend/internal/infrastructure/event"
	"github.com/ledger/backend/internal/infrastructure/persistence"
	"github.com/ledger/backend/internal/interfaces/http/handler"
	"github.com/ledger/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

type apiResponse struct {
	Code       int
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
		HasNext    bool  `json:"hasNext"`
		HasPrev    bool  `json:"hasPrev"`
	} `json:"pagination"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func (c *apiClient) do(method, path string, body any, headers ...string) apiResponse {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(middleware.AuthHeaderKey, middleware.BearerPrefix+c.token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	resp.Code = w.Code
	return resp
}

func (r apiResponse) into(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v))
}

// newTestAPI wires the full stack over an in-memory SQLite database
func newTestAPI(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	log := zap.NewNop()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	txRepo := persistence.NewGormTransactionRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	activityRepo := persistence.NewGormActivityRepository(db.DB)

	bus := event.NewInMemoryEventBus(log)
	activityHandler := appledger.NewActivityLogHandler(activityRepo, log)
	bus.Subscribe(activityHandler, activityHandler.EventTypes()...)

	clock := shared.NewSystemClock(time.UTC)
	normalizer := appledger.NewFilterNormalizer(time.UTC)

	store := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = store.Close() })

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                "integration-secret-of-32-characters!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "ledger-test",
	})

	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.Recovery(log))

	r := NewRouter(engine)
	r.Use(middleware.JWTAuthMiddleware(jwtService, log))
	Mount(r, LedgerGroups(Handlers{
		Transactions: handler.NewTransactionHandler(normalizer,
			appledger.NewQueryService(txRepo),
			appledger.NewMutationService(txRepo, categoryRepo, clock, bus, log)),
		Summary:    handler.NewSummaryHandler(normalizer, appledger.NewSummaryService(txRepo, clock)),
		Categories: handler.NewCategoryHandler(appledger.NewCategoryService(categoryRepo, clock)),
		Activity:   handler.NewActivityHandler(appledger.NewActivityService(activityRepo)),
	}, middleware.Idempotency(store, time.Hour)))
	r.Setup()

	return engine, jwtService
}

func newClient(t *testing.T, engine *gin.Engine, jwtService *auth.JWTService) *apiClient {
	t.Helper()
	token, err := jwtService.GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	return &apiClient{t: t, engine: engine, token: token.Token}
}

func TestLedgerAPI_EndToEnd(t *testing.T) {
	middleware.SetupValidator()
	engine, jwtService := newTestAPI(t)
	alice := newClient(t, engine, jwtService)
	bob := newClient(t, engine, jwtService)

	anonymous := &apiClient{t: t, engine: engine}
	assert.Equal(t, http.StatusUnauthorized, anonymous.do(http.MethodGet, "/api/v1/transactions", nil).Code)

	// categories
	resp := alice.do(http.MethodPost, "/api/v1/categories", map[string]string{"name": "Salary"})
	require.Equal(t, http.StatusCreated, resp.Code)
	var salary appledger.CategoryResponse
	resp.into(t, &salary)

	resp = alice.do(http.MethodPost, "/api/v1/categories", map[string]string{"name": "Rent"})
	require.Equal(t, http.StatusCreated, resp.Code)
	var rent appledger.CategoryResponse
	resp.into(t, &rent)

	assert.Equal(t, http.StatusConflict, alice.do(http.MethodPost, "/api/v1/categories", map[string]string{"name": "Rent"}).Code)

	// create, with an idempotency key on the first call
	resp = alice.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "income", "title": "January pay", "amount": "1000", "category": salary.ID.String(), "date": "2024-01-15",
	}, middleware.IdempotencyKeyHeader, "pay-2024-01")
	require.Equal(t, http.StatusCreated, resp.Code)
	var pay appledger.TransactionResponse
	resp.into(t, &pay)
	assert.Equal(t, "1000.00", pay.Amount)

	resp = alice.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "income", "title": "January pay", "amount": "1000", "category": salary.ID.String(), "date": "2024-01-15",
	}, middleware.IdempotencyKeyHeader, "pay-2024-01")
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "ERR_DUPLICATE_REQUEST", resp.Error.Code)

	resp = alice.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "expense", "title": "February rent", "amount": 250.5, "category": rent.ID.String(), "date": "2024-02-01",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var rentTx appledger.TransactionResponse
	resp.into(t, &rentTx)

	// validation happens before anything is stored
	assert.Equal(t, http.StatusBadRequest, alice.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "gift", "title": "x", "amount": 1, "category": salary.ID.String(),
	}).Code)
	assert.Equal(t, http.StatusBadRequest, alice.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "income", "title": "x", "amount": -1, "category": salary.ID.String(),
	}).Code)

	// listing
	resp = alice.do(http.MethodGet, "/api/v1/transactions?page=1&limit=1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrev)
	var page []appledger.TransactionResponse
	resp.into(t, &page)
	require.Len(t, page, 1)
	assert.Equal(t, rentTx.ID, page[0].ID, "newest first")

	resp = alice.do(http.MethodGet, "/api/v1/transactions?category="+salary.ID.String(), nil)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	resp = alice.do(http.MethodGet, "/api/v1/transactions?startDate=2024-01-01&endDate=2024-01-31", nil)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	resp = alice.do(http.MethodGet, "/api/v1/transactions?category=not-a-uuid", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, int64(0), resp.Pagination.Total)

	// summaries
	var summary appledger.SummaryResponse
	alice.do(http.MethodGet, "/api/v1/summary", nil).into(t, &summary)
	assert.Equal(t, appledger.SummaryResponse{TotalIncome: "1000.00", TotalExpenses: "250.50", Balance: "749.50"}, summary)

	alice.do(http.MethodGet, "/api/v1/summary?startDate=2024-02-01", nil).into(t, &summary)
	assert.Equal(t, appledger.SummaryResponse{TotalIncome: "0.00", TotalExpenses: "250.50", Balance: "-250.50"}, summary)

	var months []appledger.MonthlySummaryResponse
	alice.do(http.MethodGet, "/api/v1/summary/monthly", nil).into(t, &months)
	require.Len(t, months, 2)
	assert.Equal(t, "2024-01", months[0].Period)
	assert.Equal(t, "2024-02", months[1].Period)

	var month appledger.MonthlySummaryResponse
	alice.do(http.MethodGet, "/api/v1/summary/months/2024/1", nil).into(t, &month)
	assert.Equal(t, "1000.00", month.Balance)

	// isolation between owners
	assert.Equal(t, http.StatusNotFound, bob.do(http.MethodGet, "/api/v1/transactions/"+pay.ID.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, bob.do(http.MethodDelete, "/api/v1/transactions/"+pay.ID.String(), nil).Code)
	assert.Equal(t, http.StatusForbidden, bob.do(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type": "income", "title": "sneaky", "amount": 1, "category": salary.ID.String(),
	}).Code)
	bob.do(http.MethodGet, "/api/v1/summary", nil).into(t, &summary)
	assert.Equal(t, "0.00", summary.Balance)

	// update and delete
	resp = alice.do(http.MethodPut, "/api/v1/transactions/"+rentTx.ID.String(), map[string]any{"amount": "300"})
	require.Equal(t, http.StatusOK, resp.Code)
	var updated appledger.TransactionResponse
	resp.into(t, &updated)
	assert.Equal(t, "300.00", updated.Amount)
	assert.Equal(t, rentTx.Title, updated.Title)

	assert.Equal(t, http.StatusOK, alice.do(http.MethodDelete, "/api/v1/transactions/"+pay.ID.String(), nil).Code)
	assert.Equal(t, http.StatusNotFound, alice.do(http.MethodDelete, "/api/v1/transactions/"+pay.ID.String(), nil).Code)

	// activity log, newest first
	resp = alice.do(http.MethodGet, "/api/v1/activity", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var activity []appledger.ActivityResponse
	resp.into(t, &activity)
	require.Len(t, activity, 4)
	assert.Equal(t, "deleted", activity[0].Action)
	assert.Equal(t, "updated", activity[1].Action)

	resp = bob.do(http.MethodGet, "/api/v1/activity", nil)
	assert.Equal(t, int64(0), resp.Pagination.Total)
}
