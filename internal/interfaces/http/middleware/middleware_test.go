package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecobarangay/wasteops/internal/infrastructure/ratelimit"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/logger"
	"github.com/ecobarangay/wasteops/internal/shared/utils"
)

type mockVerifier struct {
	verifyFunc func(token string) (authorization.Actor, error)
}

func (m *mockVerifier) VerifyActor(token string) (authorization.Actor, error) {
	return m.verifyFunc(token)
}

type mockEnforcer struct {
	enforceFunc func(role authorization.Role, resource, action string) (bool, error)
}

func (m *mockEnforcer) Enforce(role authorization.Role, resource, action string) (bool, error) {
	return m.enforceFunc(role, resource, action)
}

type mockLimiter struct {
	keys      []string
	allowFunc func(key string) (bool, error)
}

func (m *mockLimiter) Allow(_ context.Context, key string, _ ratelimit.Limits) (bool, error) {
	m.keys = append(m.keys, key)
	return m.allowFunc(key)
}

func (m *mockLimiter) GetRemaining(context.Context, string, time.Duration, int) (int64, error) {
	return 0, nil
}

func (m *mockLimiter) Reset(context.Context, string) error { return nil }

type requestCount struct {
	routes []string
}

func (r *requestCount) ObserveRequest(route, _ string, _ int, _ time.Duration) {
	r.routes = append(r.routes, route)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func withActor(actor authorization.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.SetActor(c, actor)
		c.Next()
	}
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestRequireAuth(t *testing.T) {
	staff := authorization.Actor{AccountID: 20, Role: authorization.RoleStaff}
	verifier := &mockVerifier{verifyFunc: func(token string) (authorization.Actor, error) {
		if token == "good" {
			return staff, nil
		}
		return authorization.Actor{}, errors.New("bad token")
	}}

	engine := gin.New()
	engine.GET("/", NewAuthMiddleware(verifier, logger.NewDiscardLogger()).RequireAuth(), func(c *gin.Context) {
		actor, found := utils.GetActor(c)
		require.True(t, found)
		assert.Equal(t, staff, actor)
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid bearer", "Bearer good", http.StatusOK},
		{"scheme is case-insensitive", "bearer good", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"rejected token", "Bearer bad", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, serve(engine, req).Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	enforcer := &mockEnforcer{enforceFunc: func(role authorization.Role, resource, action string) (bool, error) {
		if role == authorization.RoleAdmin {
			return false, errors.New("adapter down")
		}
		return role == authorization.RoleStaff && resource == "ticket" && action == "accept", nil
	}}
	pm := NewPermissionMiddleware(enforcer, logger.NewDiscardLogger())

	tests := []struct {
		name  string
		actor *authorization.Actor
		want  int
	}{
		{"allowed", &authorization.Actor{AccountID: 20, Role: authorization.RoleStaff}, http.StatusOK},
		{"denied", &authorization.Actor{AccountID: 10, Role: authorization.RoleHousehold}, http.StatusForbidden},
		{"enforcer error", &authorization.Actor{AccountID: 40, Role: authorization.RoleAdmin}, http.StatusInternalServerError},
		{"no actor", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			handlers := []gin.HandlerFunc{}
			if tt.actor != nil {
				handlers = append(handlers, withActor(*tt.actor))
			}
			handlers = append(handlers, pm.RequirePermission("ticket", "accept"), ok)
			engine.POST("/", handlers...)

			assert.Equal(t, tt.want, serve(engine, httptest.NewRequest(http.MethodPost, "/", nil)).Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("keys by account and blocks when exhausted", func(t *testing.T) {
		limiter := &mockLimiter{allowFunc: func(string) (bool, error) { return false, nil }}
		engine := gin.New()
		engine.POST("/",
			withActor(authorization.Actor{AccountID: 30, Role: authorization.RoleOperator}),
			NewRateLimitMiddleware(limiter, ratelimit.Limits{RequestsPerMinute: 1}, logger.NewDiscardLogger()).Limit(),
			ok)

		w := serve(engine, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, []string{"account:30"}, limiter.keys)
	})

	t.Run("falls back to client ip", func(t *testing.T) {
		limiter := &mockLimiter{allowFunc: func(string) (bool, error) { return true, nil }}
		engine := gin.New()
		engine.POST("/", NewRateLimitMiddleware(limiter, ratelimit.Limits{}, logger.NewDiscardLogger()).Limit(), ok)

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "192.0.2.7:4321"
		w := serve(engine, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"ip:192.0.2.7"}, limiter.keys)
	})

	t.Run("fails open when the limiter errors", func(t *testing.T) {
		limiter := &mockLimiter{allowFunc: func(string) (bool, error) { return false, errors.New("redis: connection refused") }}
		engine := gin.New()
		engine.POST("/", NewRateLimitMiddleware(limiter, ratelimit.Limits{}, logger.NewDiscardLogger()).Limit(), ok)

		assert.Equal(t, http.StatusOK, serve(engine, httptest.NewRequest(http.MethodPost, "/", nil)).Code)
	})
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewDiscardLogger()))
	engine.GET("/", func(*gin.Context) { panic("boom") })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	observer := &requestCount{}
	engine := gin.New()
	engine.Use(Metrics(observer))
	engine.GET("/tickets/:id", ok)

	serve(engine, httptest.NewRequest(http.MethodGet, "/tickets/42", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, []string{"/tickets/:id", ""}, observer.routes)
}
