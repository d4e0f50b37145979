package testutil

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledger/backend/internal/interfaces/http/dto"
	"github.com/ledger/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMockDB(t *testing.T) {
	mockDB := NewMockDB(t)
	defer mockDB.Close()

	assert.NotNil(t, mockDB.DB)
	assert.NotNil(t, mockDB.Mock)
	assert.NotNil(t, mockDB.SqlDB)

	// No expectations set, should pass
	mockDB.ExpectationsWereMet(t)
}

func TestTestContext(t *testing.T) {
	tc := NewTestContext(t)
	assert.Equal(t, http.MethodGet, tc.Context.Request.Method)

	owner := uuid.New()
	tc.SetOwnerID(owner)
	got, ok := middleware.GetOwnerID(tc.Context)
	require.True(t, ok)
	assert.Equal(t, owner, got)

	tc.SetHeader(middleware.IdempotencyKeyHeader, "k-1")
	assert.Equal(t, "k-1", tc.Context.Request.Header.Get(middleware.IdempotencyKeyHeader))

	tc.Recorder.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, tc.ResponseCode())
}

func TestNewTestUUID_IsDeterministic(t *testing.T) {
	assert.Equal(t, NewTestUUID("a"), NewTestUUID("a"))
	assert.NotEqual(t, NewTestUUID("a"), NewTestUUID("b"))
	assert.Equal(t, NewTestUUID("test-owner"), TestOwnerID())
}

func TestWaitForCondition(t *testing.T) {
	calls := 0
	ok := WaitForCondition(t, func() bool {
		calls++
		return calls >= 3
	}, time.Second, time.Millisecond)
	assert.True(t, ok)

	assert.False(t, WaitForCondition(t, func() bool { return false }, 5*time.Millisecond, time.Millisecond))
}

func whoAmI(c *gin.Context) {
	owner, ok := middleware.GetOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"owner": owner.String()}))
}

func TestRunHTTPTestCases(t *testing.T) {
	owner := TestOwnerID()

	RunHTTPTestCases(t, whoAmI, []HTTPTestCase{
		{
			Name:           "authenticated",
			OwnerID:        owner,
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   map[string]any{"success": true},
			Validate: func(t *testing.T, tc *TestContext) {
				AssertSuccessResponse(t, tc)
				resp := JSONResponseAs[struct {
					Data struct {
						Owner string `json:"owner"`
					} `json:"data"`
				}](t, tc)
				assert.Equal(t, owner.String(), resp.Data.Owner)
			},
		},
		{
			Name:           "anonymous",
			ExpectedStatus: http.StatusUnauthorized,
			Validate: func(t *testing.T, tc *TestContext) {
				AssertErrorResponse(t, tc, dto.ErrCodeUnauthorized)
			},
		},
	})
}
