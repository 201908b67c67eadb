package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-storefront/handlers"
	"go-storefront/middleware"
	"go-storefront/sample"
	"go-storefront/source"
)

func newRouter(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	src := source.NewStatic(sample.Products())
	h := handlers.NewHandler(source.NewLoader(src, nil), src, nil, logger, handlers.DefaultOptions())
	return SetupRoutes(h, logger, nil), logs
}

func TestSetupRoutes(t *testing.T) {
	r, logs := newRouter(t)

	tests := []struct {
		method string
		target string
		code   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/products?category=jewelery", http.StatusOK},
		{http.MethodGet, "/products/1", http.StatusOK},
		{http.MethodGet, "/categories", http.StatusOK},
		{http.MethodGet, "/categories/electronics/products", http.StatusOK},
		{http.MethodGet, "/offers", http.StatusOK},
		{http.MethodGet, "/featured", http.StatusOK},
		{http.MethodGet, "/filters", http.StatusOK},
		{http.MethodPost, "/catalog/refresh", http.StatusOK},
		{http.MethodOptions, "/products", http.StatusNoContent},
		{http.MethodDelete, "/products/1", http.StatusMethodNotAllowed},
		{http.MethodGet, "/users", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, http.NoBody))
			assert.Equal(t, tt.code, rec.Code)
			if tt.code < 400 {
				assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
				assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	assert.NotZero(t, logs.FilterMessage("http request").Len())
}
