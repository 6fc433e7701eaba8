package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume_portal_backend/internal/likes/repository"
	"resume_portal_backend/internal/likes/service"
	"resume_portal_backend/platform/logger"
	"resume_portal_backend/platform/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := service.New(repository.NewRedisStore(client), logger.New("development"))
	h := New(svc, validator.New())

	engine := gin.New()
	rg := engine.Group("/api/likes")
	rg.GET("", h.Get)
	rg.POST("", h.Update)
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/likes", reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestGetStartsAtZero(t *testing.T) {
	engine := newTestRouter(t)

	rec := do(t, engine, http.MethodGet, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"count":0}` {
		t.Errorf("body = %s", body)
	}
}

func TestIncrementThenDecrement(t *testing.T) {
	engine := newTestRouter(t)

	rec := do(t, engine, http.MethodPost, `{"action":"increment"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("increment status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"count":1}` {
		t.Errorf("increment body = %s", body)
	}

	rec = do(t, engine, http.MethodPost, `{"action":"decrement"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("decrement status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"count":0}` {
		t.Errorf("decrement body = %s", body)
	}
}

func TestUnknownActionRejected(t *testing.T) {
	engine := newTestRouter(t)

	rec := do(t, engine, http.MethodPost, `{"action":"reset"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
