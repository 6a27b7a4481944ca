package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/handler"
	httpHandler "github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/handler/http"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/service"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/workers"
)

const testToken = "secret-token"

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string    { return "0.1.0" }
func (stubAppInfo) GetExtensionName(context.Context) string { return "etc_jupyterlab_telemetry_library" }

// blockingWorker records whether it saw its context cancelled.
type blockingWorker struct {
	stopped chan struct{}
}

func (w *blockingWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	close(w.stopped)
	return nil
}

type failingWorker struct{ err error }

func (w failingWorker) Run(context.Context) error { return w.err }

func newTestServer(t *testing.T, background *workers.Workers) *server {
	t.Helper()

	cfg := config.Server{HTTPAddress: "127.0.0.1:0", BaseURL: "/"}
	services := &service.Services{
		AppInfoService: stubAppInfo{},
		AuthService:    service.NewAuthService(config.App{Token: testToken}, logger.Nop()),
	}
	handlers := &handler.Handlers{HTTP: httpHandler.NewHandler(services, cfg, "etc-jupyterlab-telemetry-library", logger.Nop())}

	srv, err := NewServer(handlers, background, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesAndShutsDownGracefully(t *testing.T) {
	worker := &blockingWorker{stopped: make(chan struct{})}
	srv := newTestServer(t, workers.NewWorkers(worker))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.run(context.Background()) }()

	select {
	case <-srv.httpServer.ready:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start listening")
	}

	req, err := http.NewRequest(http.MethodGet, "http://"+srv.httpServer.Addr()+"/etc-jupyterlab-telemetry-library/version", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "token "+testToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `"0.1.0"`, string(body))

	srv.Shutdown()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	select {
	case <-worker.stopped:
	default:
		t.Fatal("worker was not stopped with the server")
	}
}

func TestServer_WorkerFailureStopsServer(t *testing.T) {
	boom := errors.New("watcher failed")
	srv := newTestServer(t, workers.NewWorkers(failingWorker{err: boom}))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.run(context.Background()) }()

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, boom)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after worker failure")
	}
}

func TestServer_ListenError(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.httpServer.server.Addr = "256.0.0.1:99999"

	err := srv.run(context.Background())

	require.Error(t, err)
}
