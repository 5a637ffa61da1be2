// Package testutil builds a fully wired application on a private in-memory
// SQLite database for tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Alexeyalexeyalex/FastApi/internal/config"
	"github.com/Alexeyalexeyalex/FastApi/internal/handler"
	"github.com/Alexeyalexeyalex/FastApi/internal/logger"
	"github.com/Alexeyalexeyalex/FastApi/internal/repository"
	"github.com/Alexeyalexeyalex/FastApi/internal/router"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/Alexeyalexeyalex/FastApi/internal/service"
	"github.com/Alexeyalexeyalex/FastApi/static"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// NewTestConfig returns the default configuration pointed at an in-memory database
// with rate limiting off.
func NewTestConfig() *config.Config {
	obs := config.DefaultObservabilityConfig()
	obs.Environment = "test"

	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   ":memory:",
		},
		Fake: config.FakeConfig{
			OrderUserID:    2,
			OrderProductID: 1,
			OrderStatuses:  []string{"in progress", "done"},
			MinPrice:       1,
			MaxPrice:       100,
			BatchSize:      100,
		},
		Observability: obs,
	}
}

// NewTestServer opens a server on cfg (NewTestConfig when nil) and closes it
// when the test ends.
func NewTestServer(t *testing.T, cfg *config.Config) *server.Server {
	t.Helper()

	if cfg == nil {
		cfg = NewTestConfig()
	}

	log := zerolog.Nop()
	srv, err := server.New(cfg, &log, &logger.LoggerService{})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	return srv
}

// App is a wired application: server, repositories, services and router.
type App struct {
	Server       *server.Server
	Repositories *repository.Repositories
	Services     *service.Services
	Router       *echo.Echo
}

// NewTestApp wires the whole application the way cmd/shop does.
func NewTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()

	srv := NewTestServer(t, cfg)
	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	require.NoError(t, err)

	handlers := handler.NewHandlers(srv, services, static.Files)

	return &App{
		Server:       srv,
		Repositories: repos,
		Services:     services,
		Router:       router.NewRouter(srv, handlers, static.Files),
	}
}

// Do sends a request through the router. A non-nil body is JSON-encoded.
func (a *App) Do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// DoRaw sends a request with a raw JSON body.
func (a *App) DoRaw(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON decodes the recorded body into a value of type T.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

