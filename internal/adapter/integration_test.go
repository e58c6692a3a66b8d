//go:build integration

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter_test

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/adapter"
	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/handler"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/MKhiriev/go-newsletter/internal/server"
	"github.com/MKhiriev/go-newsletter/internal/service"
	"github.com/MKhiriev/go-newsletter/internal/store"
	"github.com/MKhiriev/go-newsletter/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresUser     = "postgres"
	postgresPassword = "password"
)

var (
	// baseDB points at the shared container; every test gets its own
	// database on it.
	baseDB config.DB

	testLogger     *logger.Logger
	testLoggerOnce sync.Once
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase("newsletter"),
		tcpostgres.WithUsername(postgresUser),
		tcpostgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
		os.Exit(1)
	}

	host, err := container.Host(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		_ = container.Terminate(ctx)
		os.Exit(1)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get container port: %v\n", err)
		_ = container.Terminate(ctx)
		os.Exit(1)
	}

	baseDB = config.DB{
		Username: postgresUser,
		Password: postgresPassword,
		Host:     host,
		Port:     port.Int(),
		SSLMode:  "disable",
	}

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}

// getTestLogger prints debug output only when TEST_LOG is set.
func getTestLogger() *logger.Logger {
	testLoggerOnce.Do(func() {
		if os.Getenv("TEST_LOG") != "" {
			testLogger = logger.NewLogger("test", "debug")
			return
		}
		testLogger = logger.Nop()
	})
	return testLogger
}

type testApp struct {
	address  string
	client   adapter.NewsletterAdapter
	storages *store.Storages
}

// spawnApp creates a fresh database, wires the whole server on a random
// loopback port and returns a client pointed at it.
func spawnApp(t *testing.T) *testApp {
	t.Helper()

	log := getTestLogger()
	dbCfg := createTestDatabase(t)

	storages, err := store.NewStorages(context.Background(), config.Storage{DB: dbCfg}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	serverCfg := config.Server{
		HTTPAddress:     "127.0.0.1:0",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
	cfg := config.StructuredConfig{
		App:    config.App{Version: "integration"},
		Server: serverCfg,
	}

	services, err := service.NewServices(storages, cfg, log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, serverCfg, log)
	require.NoError(t, err)

	srv, err := server.NewServer(handlers, serverCfg, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	address := srv.HTTPAddr().String()
	client, err := adapter.NewHTTPNewsletterAdapter(address, 5*time.Second, log)
	require.NoError(t, err)

	return &testApp{address: address, client: client, storages: storages}
}

func createTestDatabase(t *testing.T) config.DB {
	t.Helper()

	admin, err := sql.Open("pgx", baseDB.ConnectionStringWithoutDB())
	require.NoError(t, err)

	dbName := "newsletter_" + strings.ReplaceAll(utils.NewUUIDGenerator().GenerateString(), "-", "")
	_, err = admin.Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, dbName))
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = admin.Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS "%s" WITH (FORCE)`, dbName))
		_ = admin.Close()
	})

	dbCfg := baseDB
	dbCfg.DatabaseName = dbName
	return dbCfg
}

func TestHealthCheckWorks(t *testing.T) {
	app := spawnApp(t)

	require.NoError(t, app.client.HealthCheck(context.Background()))

	resp, err := utils.NewHTTPClient("integration").R().Get("http://" + app.address + "/health_check")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Empty(t, resp.Body())
	assert.Equal(t, int64(0), resp.RawResponse.ContentLength)
}

func TestSubscribeReturns200ForValidFormData(t *testing.T) {
	app := spawnApp(t)
	ctx := context.Background()

	err := app.client.Subscribe(ctx, "le guin", "ursula_le_guin@gmail.com")
	require.NoError(t, err)

	saved, err := app.storages.SubscriptionRepository.FindSubscriptionByEmail(ctx, "ursula_le_guin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "le guin", saved.Name)
	assert.Equal(t, "ursula_le_guin@gmail.com", saved.Email)
	assert.Equal(t, 4, int(saved.ID.Version()))
	assert.WithinDuration(t, time.Now(), saved.SubscribedAt, time.Minute)
}

func TestSubscribeReturns400WhenDataIsMissing(t *testing.T) {
	app := spawnApp(t)

	tests := []struct {
		name  string
		user  string
		email string
	}{
		{name: "missing the email", user: "le guin"},
		{name: "missing the name", email: "ursula_le_guin@gmail.com"},
		{name: "missing both name and email"},
		{name: "invalid email", user: "le guin", email: "definitely-not-an-email"},
		{name: "name that is not valid utf-8", user: "\xff\xfe", email: "ursula_le_guin@gmail.com"},
		{name: "name with a nul byte", user: "a\x00b", email: "ursula_le_guin@gmail.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.client.Subscribe(context.Background(), tt.user, tt.email)
			require.ErrorIs(t, err, adapter.ErrBadRequest, "the API did not fail with 400 Bad Request when the payload was %s", tt.name)
		})
	}
}

func TestSubscribeReturns409ForDuplicateEmail(t *testing.T) {
	app := spawnApp(t)
	ctx := context.Background()

	require.NoError(t, app.client.Subscribe(ctx, "le guin", "ursula_le_guin@gmail.com"))

	err := app.client.Subscribe(ctx, "someone else", "ursula_le_guin@gmail.com")
	require.ErrorIs(t, err, adapter.ErrAlreadySubscribed)

	saved, err := app.storages.SubscriptionRepository.FindSubscriptionByEmail(ctx, "ursula_le_guin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "le guin", saved.Name)
}

func TestVersionReturnsConfiguredVersion(t *testing.T) {
	app := spawnApp(t)

	version, err := app.client.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "integration", version)
}
