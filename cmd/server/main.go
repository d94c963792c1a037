package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/janisto/huma-hello/internal/http/routes"
	"github.com/janisto/huma-hello/internal/platform/environ"
	applog "github.com/janisto/huma-hello/internal/platform/logging"
	appmiddleware "github.com/janisto/huma-hello/internal/platform/middleware"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	// listenHost is the wildcard address; the bind is fixed and not configurable.
	listenHost      = "0.0.0.0"
	listenPort      = "9999"
	shutdownTimeout = 10 * time.Second
)

func main() {
	defer func() { _ = applog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, net.JoinHostPort(listenHost, listenPort), nil); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		_ = applog.Sync()
		os.Exit(1)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// run writes the environment dump to stdout, then serves on addr until ctx
// is done. The dump is flushed before the listener is opened. started, when
// non-nil, receives the bound address once connections can be accepted.
func run(ctx context.Context, stdout io.Writer, addr string, started func(net.Addr)) error {
	if err := environ.Dump(stdout); err != nil {
		return fmt.Errorf("dump environment: %w", err)
	}

	srv := newServer(addr, newRouter())
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()), zap.String("version", Version))
	if started != nil {
		started(ln.Addr())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		applog.LogInfo(context.Background(), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newRouter builds the HTTP handler. Unmatched paths and methods fall
// through to chi's built-in 404 and 405 responses.
func newRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.Security(routes.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only meaningful behind a reverse proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB
		applog.Middleware(),
		chimiddleware.Recoverer,
	)

	api := routes.NewAPI(router, Version)
	routes.Register(api)
	return router
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}
