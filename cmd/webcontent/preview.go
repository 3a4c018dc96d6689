package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	webcontent "github.com/alnah/go-webcontent"
	"github.com/alnah/go-webcontent/internal/logger"
	"github.com/go-chi/chi/v5"
)

// ErrAddrInUse indicates the preview address is already bound.
var ErrAddrInUse = errors.New("preview address already in use")

// Server timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// builder is the part of the generator the preview server needs.
type builder interface {
	Build() (*webcontent.Result, error)
}

// Compile-time interface implementation check.
var _ builder = (*webcontent.Generator)(nil)

// runPreviewCmd serves the assembled page until ctx is canceled.
func runPreviewCmd(ctx context.Context, args []string, env *Environment) int {
	f, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return flagErrorCode(env.Stderr, err)
	}

	s, err := resolveSettings(&f.common, env)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	addr := f.addr
	if addr == "" {
		addr = s.cfg.Preview.Addr
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return reportError(env.Stderr, fmt.Errorf("%w: --addr %q: %w", ErrUsage, addr, err))
	}

	gen, err := newGenerator(s)
	if err != nil {
		return reportError(env.Stderr, err)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return reportError(env.Stderr, fmt.Errorf("%w: %s", ErrAddrInUse, addr))
		}
		return reportError(env.Stderr, fmt.Errorf("listening on %s: %w", addr, err))
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving preview on http://%s (Ctrl+C to stop)\n", ln.Addr())
	}

	if err := servePreview(ctx, ln, newPreviewRouter(gen, s.log), s.log); err != nil {
		return reportError(env.Stderr, err)
	}
	return ExitSuccess
}

// servePreview serves handler on ln and shuts down gracefully when ctx ends.
func servePreview(ctx context.Context, ln net.Listener, handler http.Handler, log logger.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("preview server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("preview server forced to shutdown: %w", err)
	}
	return nil
}

// newPreviewRouter returns the preview routes. Every request rebuilds from
// disk, so edits under data/ show up on reload.
func newPreviewRouter(gen builder, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Use(recoverer(log))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		result, ok := buildForRequest(w, gen, log)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(result.HTML))
	})

	r.Get("/"+webcontent.OutputFile, func(w http.ResponseWriter, req *http.Request) {
		result, ok := buildForRequest(w, gen, log)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(result.Header))
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// buildForRequest runs the pipeline and writes an error response on failure.
func buildForRequest(w http.ResponseWriter, gen builder, log logger.Logger) (*webcontent.Result, bool) {
	result, err := gen.Build()
	if err != nil {
		log.Error().Err(err).Msg("Preview build failed")
		status := http.StatusInternalServerError
		if code := exitCodeFor(err); code == ExitIO || code == ExitContent {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error()+hintFor(err), status)
		return nil, false
	}
	return result, true
}
