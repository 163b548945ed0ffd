package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-library/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont-library/internal/usecases"
	"github.com/rs/cors"
)

//go:generate go tool oapi-codegen -config gen/config.yaml ../../../../api/openapi.yaml

var _ gen.ServerInterface = (*LibraryAppServer)(nil)

// LibraryAppServer is the REST API HTTP server for the library application.
type LibraryAppServer struct {
	Port        int                  `config:"HTTP_PORT" default:"8080"`
	Logger      *log.Logger          `resolve:""`
	BookService usecases.BookService `resolve:""`
	LoanService usecases.LoanService `resolve:""`
}

// Run starts the HTTP server for the LibraryAppServer.
func (api LibraryAppServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := &http.Server{
		Handler:           api.newHandler(mux),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("LibraryAppServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("LibraryAppServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("LibraryAppServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// newHandler mounts the API routes on mux, wrapped with telemetry and CORS.
func (api LibraryAppServer) newHandler(mux *http.ServeMux) http.Handler {
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("libraryapp-api"),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			respondBadRequest(w, err.Error())
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// IsReady checks if the LibraryAppServer is ready by performing a health check.
func (api LibraryAppServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
