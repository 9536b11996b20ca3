package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/handler"
	"ejsmarket/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setAuthContext mimics what the auth middleware stores for a request.
func setAuthContext(c *gin.Context, userID uuid.UUID, role domain.Role) {
	c.Set("user_id", userID)
	c.Set("email", "test@example.fr")
	c.Set("role", string(role))
}

func newTestContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestStatsHandler_GetDashboard_Success(t *testing.T) {
	statsService := new(mocks.MockStatsService)
	h := handler.NewStatsHandler(statsService)

	stats := &domain.DashboardStats{
		Revenue:         domain.RevenueStats{Today: 12500, Week: 84000},
		PendingOrders:   7,
		TopProducts:     []domain.TopProduct{},
		RecentOrders:    []domain.RecentOrder{},
		DailyRevenue:    []domain.DailyRevenuePoint{},
		StatusBreakdown: []domain.StatusCount{},
	}
	statsService.On("GetDashboardStats", mock.Anything, domain.RoleAdmin).Return(stats, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/admin/stats")
	setAuthContext(c, uuid.New(), domain.RoleAdmin)

	h.GetDashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    domain.DashboardStats `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(12500), resp.Data.Revenue.Today)
	assert.Equal(t, 7, resp.Data.PendingOrders)
	statsService.AssertExpectations(t)
}

func TestStatsHandler_GetDashboard_ForbiddenRole(t *testing.T) {
	statsService := new(mocks.MockStatsService)
	h := handler.NewStatsHandler(statsService)

	statsService.On("GetDashboardStats", mock.Anything, domain.RoleCustomer).
		Return(nil, domain.ErrForbidden)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/admin/stats")
	setAuthContext(c, uuid.New(), domain.RoleCustomer)

	h.GetDashboard(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
}

func TestStatsHandler_GetDashboard_MissingAuthContext(t *testing.T) {
	statsService := new(mocks.MockStatsService)
	h := handler.NewStatsHandler(statsService)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/admin/stats")

	h.GetDashboard(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	statsService.AssertNotCalled(t, "GetDashboardStats", mock.Anything, mock.Anything)
}
