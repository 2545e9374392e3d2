package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/usecases"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*FareAssistServer)(nil)

// FareAssistServer is the REST API and MCP HTTP server for the FareAssist application.
type FareAssistServer struct {
	Port                       int                          `config:"HTTP_PORT" default:"8080"`
	Logger                     *log.Logger                  `resolve:""`
	ChatTurnUseCase            usecases.ChatTurn            `resolve:""`
	ListSessionMessagesUseCase usecases.ListSessionMessages `resolve:""`
	DeleteSessionUseCase       usecases.DeleteSession       `resolve:""`
	ListToolsUseCase           usecases.ListTools           `resolve:""`
	ListModelsUseCase          usecases.ListModels          `resolve:""`
	MCPServer                  *mcpsdk.Server               `resolve:""`
}

// Handler builds the routed and instrumented handler of the server.
func (api FareAssistServer) Handler() http.Handler {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", api.Introspect)

	if api.MCPServer != nil {
		mux.Handle("/mcp", mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
			return api.MCPServer
		}, nil))
	}

	// Create the OpenAPI handler with telemetry middleware
	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("fareassist-api"),
		},
		ErrorHandlerFunc: respondParamError,
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the FareAssistServer.
func (api FareAssistServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("FareAssistServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("FareAssistServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("FareAssistServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the FareAssistServer is ready by performing a health check.
func (api FareAssistServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
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
