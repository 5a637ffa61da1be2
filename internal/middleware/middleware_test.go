package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alexeyalexeyalex/FastApi/internal/errs"
	"github.com/Alexeyalexeyalex/FastApi/internal/logger"
	"github.com/Alexeyalexeyalex/FastApi/internal/middleware"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/Alexeyalexeyalex/FastApi/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(t *testing.T) (*echo.Echo, *middleware.Middlewares) {
	t.Helper()

	log := zerolog.Nop()
	srv := &server.Server{
		Config:        testutil.NewTestConfig(),
		Logger:        &log,
		LoggerService: &logger.LoggerService{},
	}

	mw := middleware.NewMiddlewares(srv)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(
		middleware.RequestID(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.Recover(),
	)
	return e, mw
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDIsReusedOrGenerated(t *testing.T) {
	e, _ := newEcho(t)
	e.GET("/id", func(c echo.Context) error {
		return c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(middleware.RequestIDHeader, "given-id")
	rec := serve(e, req)
	assert.Equal(t, "given-id", rec.Body.String())
	assert.Equal(t, "given-id", rec.Header().Get(middleware.RequestIDHeader))

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/id", nil))
	assert.Len(t, rec.Body.String(), 36)
	assert.Equal(t, rec.Body.String(), rec.Header().Get(middleware.RequestIDHeader))
}

func TestContextEnhancerStoresLogger(t *testing.T) {
	e, _ := newEcho(t)
	e.GET("/logger", func(c echo.Context) error {
		fromEcho := middleware.GetLogger(c)
		fromCtx := zerolog.Ctx(c.Request().Context())
		require.NotNil(t, fromEcho)
		require.NotNil(t, fromCtx)
		return c.NoContent(http.StatusNoContent)
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/logger", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGlobalErrorHandler(t *testing.T) {
	e, _ := newEcho(t)
	e.GET("/http-error", func(c echo.Context) error {
		return errs.NewBadRequestError("bad input", true, nil, []errs.FieldError{{Field: "name", Error: "is required"}})
	})
	e.GET("/plain-error", func(c echo.Context) error {
		return errors.New("database is on fire")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})
	e.GET("/echo-error", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "already there")
	})

	tests := []struct {
		path     string
		status   int
		code     string
		message  string
		override bool
	}{
		{"/http-error", http.StatusBadRequest, "BAD_REQUEST", "bad input", true},
		{"/plain-error", http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error", false},
		{"/panic", http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error", false},
		{"/echo-error", http.StatusConflict, "CONFLICT", "already there", false},
		{"/missing", http.StatusNotFound, "NOT_FOUND", "Route not found", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(e, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			body := testutil.DecodeJSON[errs.HTTPError](t, rec)
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.override, body.Override)
		})
	}
}

func TestRateLimitDisabledWhenZero(t *testing.T) {
	e, mw := newEcho(t)
	e.Use(mw.RateLimit.Limit())
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for i := 0; i < 50; i++ {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
}
