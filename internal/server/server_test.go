package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-login-server/internal/config"
	"github.com/MKhiriev/go-login-server/internal/handler"
	httphandler "github.com/MKhiriev/go-login-server/internal/handler/http"
	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/internal/workers"
)

type blockingWorker struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.started.Store(true)
	<-ctx.Done()
	w.stopped.Store(true)
}

func newTestServer(addr string, w workers.Worker) *server {
	cfg := config.Server{HTTPAddress: addr, RequestTimeout: time.Second, ShutdownTimeout: time.Second}
	return &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop()),
		workers:    workers.NewWorkers(w),
		logger:     logger.Nop(),
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, workers.NewWorkers(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, s)
}

func TestNewServer_NilHandlers(t *testing.T) {
	s, err := NewServer(nil, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHTTPHandler)
	assert.Nil(t, s)
}

func TestNewServer_EmptyAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: &httphandler.Handler{}}

	s, err := NewServer(handlers, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoListenAddress)
	assert.Nil(t, s)
}

// TestServer_Run_StopsOnCancel verifies that cancelling the run context shuts
// the HTTP server down and waits for the workers.
func TestServer_Run_StopsOnCancel(t *testing.T) {
	w := &blockingWorker{}
	s := newTestServer("127.0.0.1:0", w)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.run(ctx) }()

	require.Eventually(t, w.started.Load, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
	assert.True(t, w.stopped.Load())
}

// TestServer_Run_ListenFailure verifies that a listener failure is reported
// and the workers are stopped.
func TestServer_Run_ListenFailure(t *testing.T) {
	w := &blockingWorker{}
	s := newTestServer("127.0.0.1:-1", w)

	errCh := make(chan error, 1)
	go func() { errCh <- s.run(context.Background()) }()

	select {
	case err := <-errCh:
		require.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after listener failure")
	}
	assert.True(t, w.stopped.Load())
}
