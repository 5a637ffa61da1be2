package server_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Alexeyalexeyalex/FastApi/internal/config"
	"github.com/Alexeyalexeyalex/FastApi/internal/logger"
	"github.com/Alexeyalexeyalex/FastApi/internal/model"
	"github.com/Alexeyalexeyalex/FastApi/internal/repository"
	"github.com/Alexeyalexeyalex/FastApi/internal/server"
	"github.com/Alexeyalexeyalex/FastApi/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T, cfg *config.Config) *server.Server {
	t.Helper()

	log := zerolog.Nop()
	srv, err := server.New(cfg, &log, &logger.LoggerService{})
	require.NoError(t, err)
	return srv
}

func shutdown(t *testing.T, srv *server.Server) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	ctx := context.Background()

	cfg := testutil.NewTestConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "shop.db")
	require.NoFileExists(t, cfg.Database.Path)

	srv := open(t, cfg)
	assert.FileExists(t, cfg.Database.Path)

	user := &model.User{UserPayload: model.UserPayload{
		FirstName:  "Ann",
		SecondName: "Lee",
		Email:      "ann@mail.ru",
		Password:   "secret",
	}}
	require.NoError(t, repository.NewRepositories(srv).Users.Create(ctx, user))
	shutdown(t, srv)

	srv = open(t, cfg)
	defer shutdown(t, srv)

	repos := repository.NewRepositories(srv)

	stored, err := repos.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *user, *stored)

	count, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestShutdownWithoutHTTPServer(t *testing.T) {
	srv := open(t, testutil.NewTestConfig())
	shutdown(t, srv)

	assert.Error(t, srv.Start())
}
