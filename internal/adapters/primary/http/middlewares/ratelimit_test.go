package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.001, 2)

	r := gin.New()
	r.GET("/api/cities", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v; want [200 200 429]", codes)
	}

	// другой IP - своя корзина
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	req.RemoteAddr = "203.0.113.10:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("second ip got %d", w.Code)
	}
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return base }
	first := rl.limiter("old")

	rl.now = func() time.Time { return base.Add(visitorTTL) }
	rl.lookups = cleanupThreshold - 1
	_ = rl.limiter("new")

	if _, ok := rl.visitors["old"]; ok {
		t.Fatal("idle visitor must be evicted")
	}
	if got := rl.limiter("old"); got == first {
		t.Fatal("evicted visitor must get a fresh limiter")
	}
}

func TestRateLimiter_BurstCoercion(t *testing.T) {
	if rl := NewRateLimiter(1, 0); rl.burst != 1 {
		t.Fatalf("burst = %d; want 1", rl.burst)
	}
}
