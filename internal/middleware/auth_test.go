package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlist_backend/internal/config"
	"wanderlist_backend/internal/middleware"
	"wanderlist_backend/internal/util"
)

const testSecret = "middleware-test-secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	return cfg
}

type touchCall struct {
	userID uint
	email  string
	name   string
}

// touchRecorder 记录 Touch 调用；中间件异步触发，用通道等待
type touchRecorder struct {
	mu    sync.Mutex
	calls []touchCall
	done  chan struct{}
}

func newTouchRecorder() *touchRecorder {
	return &touchRecorder{done: make(chan struct{}, 1)}
}

func (r *touchRecorder) Touch(userID uint, email, name string) error {
	r.mu.Lock()
	r.calls = append(r.calls, touchCall{userID: userID, email: email, name: name})
	r.mu.Unlock()
	r.done <- struct{}{}
	return nil
}

func setupRouter(recorder *touchRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(testConfig()), middleware.ActivityMiddleware(recorder))
	router.GET("/ping", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	recorder := newTouchRecorder()
	router := setupRouter(recorder)

	token, err := util.GenerateJWT(7, "lee@example.com", "Lee", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case <-recorder.done:
	case <-time.After(time.Second):
		t.Fatal("activity touch was not recorded")
	}
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	require.Len(t, recorder.calls, 1)
	assert.Equal(t, touchCall{userID: 7, email: "lee@example.com", name: "Lee"}, recorder.calls[0])
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	router := setupRouter(newTouchRecorder())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	router := setupRouter(newTouchRecorder())

	token, err := util.GenerateJWT(7, "lee@example.com", "Lee", "some-other-secret", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_QueryToken(t *testing.T) {
	recorder := newTouchRecorder()
	router := setupRouter(recorder)

	token, err := util.GenerateJWT(7, "lee@example.com", "Lee", testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping?token="+token, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
