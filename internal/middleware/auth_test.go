package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-api/internal/client"
	"storefront-api/internal/dto"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
	"storefront-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthService(t *testing.T) service.AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.Migrate(db))
	return service.NewAuthService(repository.NewUserRepository(db), "test-secret", 30)
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string, seed func(echo.Context)) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if seed != nil {
		seed(c)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := mw(next)(c)
	return rec, c, err
}

func TestRequireAuth(t *testing.T) {
	authService := newAuthService(t)
	mw := RequireAuth(authService)

	resp, err := authService.Register(context.Background(), &dto.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		_, _, err := invoke(t, mw, "", nil)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		_, _, err := invoke(t, mw, "Basic abc", nil)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, _, err := invoke(t, mw, "Bearer garbage", nil)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		rec, c, err := invoke(t, mw, "Bearer "+resp.Token, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, resp.ID, c.Get(ContextUserID))
		assert.Equal(t, model.RoleCustomer, c.Get(ContextRole))
	})
}

func TestRequireAdmin(t *testing.T) {
	mw := RequireAdmin()

	t.Run("customer blocked", func(t *testing.T) {
		_, _, err := invoke(t, mw, "", func(c echo.Context) {
			c.Set(ContextRole, model.RoleCustomer)
		})
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("no role blocked", func(t *testing.T) {
		_, _, err := invoke(t, mw, "", nil)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		rec, _, err := invoke(t, mw, "", func(c echo.Context) {
			c.Set(ContextRole, model.RoleAdmin)
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
