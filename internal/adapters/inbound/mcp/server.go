package mcp

import (
	"context"
	"encoding/json"
	"log"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serverName = "fareassist"

// ToolServer exposes every registered tool over the Model Context Protocol.
// Calls go through the same dispatcher the chat turns use.
type ToolServer struct {
	catalog    domain.ToolCatalog
	dispatcher domain.ToolDispatcher
}

// NewToolServer creates a ToolServer.
func NewToolServer(catalog domain.ToolCatalog, dispatcher domain.ToolDispatcher) ToolServer {
	return ToolServer{
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

// Build creates the MCP server with one tool per descriptor.
func (s ToolServer) Build(version string) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: serverName, Version: version}, nil)
	for _, descriptor := range s.catalog.DescribeAll() {
		server.AddTool(&mcpsdk.Tool{
			Name:        descriptor.Name,
			Description: descriptor.Description,
			InputSchema: descriptor.JSONSchema(),
		}, s.handler(descriptor.Name))
	}
	return server
}

func (s ToolServer) handler(toolName string) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		callID := "mcp_" + uuid.NewString()
		spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
			attribute.String("tool.name", toolName),
			attribute.String("tool.call_id", callID),
		))
		defer span.End()

		arguments := "{}"
		if len(req.Params.Arguments) > 0 {
			arguments = string(req.Params.Arguments)
		}

		result, err := s.dispatcher.Dispatch(spanCtx, domain.ToolInvocationRequest{
			ID:        callID,
			Name:      toolName,
			Arguments: arguments,
		})
		telemetry.RecordErrorAndStatus(span, err)
		return toCallToolResult(result, err), nil
	}
}

func toCallToolResult(result domain.ToolResult, err error) *mcpsdk.CallToolResult {
	body := map[string]any{"status": string(result.Status)}
	if len(result.Payload) > 0 {
		body["result"] = result.Payload
	}
	if err != nil {
		body["error"] = err.Error()
	}

	text, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		return &mcpsdk.CallToolResult{
			IsError: true,
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: marshalErr.Error()}},
		}
	}
	return &mcpsdk.CallToolResult{
		IsError: err != nil,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(text)}},
	}
}

// InitToolServer builds the MCP server and registers it in the dependency container.
type InitToolServer struct {
	Logger     *log.Logger           `resolve:""`
	Catalog    domain.ToolCatalog    `resolve:""`
	Dispatcher domain.ToolDispatcher `resolve:""`
	Version    string                `config:"APP_VERSION" default:"dev"`
}

// Initialize registers the *mcpsdk.Server.
func (i InitToolServer) Initialize(ctx context.Context) (context.Context, error) {
	server := NewToolServer(i.Catalog, i.Dispatcher).Build(i.Version)
	i.Logger.Printf("InitToolServer: exposing %d tools over MCP", len(i.Catalog.DescribeAll()))
	depend.Register(server)
	return ctx, nil
}
