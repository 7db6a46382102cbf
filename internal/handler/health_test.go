package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkFunc func(ctx context.Context) error

func (f checkFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

type fakePool struct {
	err   error
	pings int
}

func (p *fakePool) Ping(context.Context) error {
	p.pings++
	return p.err
}

func (p *fakePool) Close() {}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	healthy := checkFunc(func(context.Context) error { return nil })
	broken := checkFunc(func(context.Context) error { return errors.New("refused") })

	tests := []struct {
		name        string
		checks      map[string]HealthChecker
		wantStatus  int
		wantChecks  map[string]string
		wantMessage string
	}{
		{
			name:       "No Checks",
			checks:     nil,
			wantStatus: http.StatusOK,
		},
		{
			name:       "All Healthy",
			checks:     map[string]HealthChecker{"store": healthy, "bus": healthy},
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{"store": "ok", "bus": "ok"},
		},
		{
			name:        "Failures Listed In Name Order",
			checks:      map[string]HealthChecker{"wineapi": broken, "store": broken, "bus": healthy},
			wantStatus:  http.StatusServiceUnavailable,
			wantChecks:  map[string]string{"wineapi": "unavailable", "store": "unavailable", "bus": "ok"},
			wantMessage: "store, wineapi check failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleReadyz(tt.checks).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var body HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
			if tt.wantChecks != nil {
				assert.Equal(t, tt.wantChecks, body.Checks)
			}
		})
	}
}

func TestHandleReadyz_ChecksRunUnderDeadline(t *testing.T) {
	var hadDeadline bool
	check := checkFunc(func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	})

	HandleReadyz(map[string]HealthChecker{"store": check}).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.True(t, hadDeadline)
}

func TestPoolChecker(t *testing.T) {
	pool := &fakePool{}
	assert.NoError(t, PoolChecker{Pool: pool}.CheckHealth(context.Background()))

	pool.err = errors.New("connection reset")
	assert.ErrorIs(t, PoolChecker{Pool: pool}.CheckHealth(context.Background()), pool.err)
	assert.Equal(t, 2, pool.pings)
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.4.0")
	w := httptest.NewRecorder()
	HandleVersion().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, ServiceName, info.Service)
	assert.Equal(t, "1.4.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestResolveVersion(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })

	Version = ""
	t.Setenv("VERSION", "")
	assert.Equal(t, "dev", ResolveVersion())

	t.Setenv("VERSION", "2.0.0")
	assert.Equal(t, "2.0.0", ResolveVersion())

	Version = "2.1.0"
	assert.Equal(t, "2.1.0", ResolveVersion())
}
