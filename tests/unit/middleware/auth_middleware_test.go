package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ejsmarket/internal/domain"
	"ejsmarket/internal/middleware"
	"ejsmarket/internal/service"
	"ejsmarket/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func protectedRouter(authService service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware(authService)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": string(middleware.GetRole(c))})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authService := new(mocks.MockAuthService)
	r := protectedRouter(authService)

	w := performRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	authService.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	authService := new(mocks.MockAuthService)
	r := protectedRouter(authService)

	w := performRequest(r, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authService := new(mocks.MockAuthService)
	authService.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)
	r := protectedRouter(authService)

	w := performRequest(r, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenInjectsContext(t *testing.T) {
	authService := new(mocks.MockAuthService)
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "sub"},
		UserID:           uuid.New(),
		Email:            "claire@example.fr",
		Role:             domain.RoleManager,
	}
	authService.On("ValidateToken", "good-token").Return(claims, nil)
	r := protectedRouter(authService)

	w := performRequest(r, "Bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MANAGER")
}

func TestRequireAdminAccess_CustomerForbidden(t *testing.T) {
	authService := new(mocks.MockAuthService)
	claims := &service.Claims{UserID: uuid.New(), Role: domain.RoleCustomer}
	authService.On("ValidateToken", "customer-token").Return(claims, nil)
	r := protectedRouter(authService, middleware.RequireAdminAccess())

	w := performRequest(r, "Bearer customer-token")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAccess_ManagerAllowed(t *testing.T) {
	authService := new(mocks.MockAuthService)
	claims := &service.Claims{UserID: uuid.New(), Role: domain.RoleManager}
	authService.On("ValidateToken", "manager-token").Return(claims, nil)
	r := protectedRouter(authService, middleware.RequireAdminAccess())

	w := performRequest(r, "Bearer manager-token")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermission_GatesOnFlag(t *testing.T) {
	authService := new(mocks.MockAuthService)
	claims := &service.Claims{UserID: uuid.New(), Role: domain.RoleManager}
	authService.On("ValidateToken", "manager-token").Return(claims, nil)

	// Managers hold the operational flags but not user management.
	r := protectedRouter(authService, middleware.RequirePermission(domain.CanManageUsers))
	w := performRequest(r, "Bearer manager-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = protectedRouter(authService, middleware.RequirePermission(func(role domain.Role) bool {
		return domain.GetUserPermissions(role).CanManageStock
	}))
	w = performRequest(r, "Bearer manager-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireB2B_OnlyTradeAccounts(t *testing.T) {
	authService := new(mocks.MockAuthService)
	b2bClaims := &service.Claims{UserID: uuid.New(), Role: domain.RoleB2BCustomer}
	authService.On("ValidateToken", "b2b-token").Return(b2bClaims, nil)
	retailClaims := &service.Claims{UserID: uuid.New(), Role: domain.RoleCustomer}
	authService.On("ValidateToken", "retail-token").Return(retailClaims, nil)

	r := protectedRouter(authService, middleware.RequireB2B())

	assert.Equal(t, http.StatusOK, performRequest(r, "Bearer b2b-token").Code)
	assert.Equal(t, http.StatusForbidden, performRequest(r, "Bearer retail-token").Code)
}
