package healthcheckController

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthAndReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		path string
		deps map[string]Pinger
		want int
	}{
		{"health", "/health", nil, http.StatusOK},
		{"ready", "/ready", map[string]Pinger{"postgres": pingFunc(func(context.Context) error { return nil })}, http.StatusOK},
		{"not ready", "/ready", map[string]Pinger{"postgres": pingFunc(func(context.Context) error { return errors.New("down") })}, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			New(tc.deps, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("code = %d; want %d", w.Code, tc.want)
			}
		})
	}
}
