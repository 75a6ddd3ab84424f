package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/digesto/server/mocks"
)

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.EngineMock{}, &mocks.SchedulerMock{}, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.router)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}

	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.EngineMock{}, &mocks.SchedulerMock{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	// wait for the server to come up
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "ok", status["status"])

	// graceful shutdown
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestServer_PingMiddleware(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.EngineMock{}, &mocks.SchedulerMock{}, "test", false)

	req := httptest.NewRequest("GET", "/ping", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestServer_AppInfoHeaders(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.EngineMock{}, &mocks.SchedulerMock{}, "0.9.1", false)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, "digesto", w.Header().Get("App-Name"))
	assert.Equal(t, "0.9.1", w.Header().Get("App-Version"))
}

func TestRenderJSON(t *testing.T) {
	w := httptest.NewRecorder()
	renderJSON(w, nil, http.StatusTeapot, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"k": "v"}`, w.Body.String())
}

func TestRenderError(t *testing.T) {
	t.Run("with error", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderError(w, nil, fmt.Errorf("boom"), http.StatusBadRequest)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error": "boom"}`, w.Body.String())
	})

	t.Run("nil error", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderError(w, nil, nil, http.StatusInternalServerError)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "unknown error"}`, w.Body.String())
	})
}
