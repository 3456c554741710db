package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"atlassian-cloud-mcp/internal/domain"
)

// ServerName and ServerVersion identify this server during the MCP handshake.
const (
	ServerName      = "atlassian-cloud-mcp"
	ServerVersion   = "1.0.0"
	ProtocolVersion = "2024-11-05"
)

// Server is the MCP server implementation. It reads JSON-RPC requests from
// the transport one at a time and answers the three MCP methods: initialize,
// tools/list, and tools/call.
type Server struct {
	transport  domain.Transport
	dispatcher *Dispatcher
	logger     zerolog.Logger
}

// NewServer creates a new MCP server instance.
func NewServer(transport domain.Transport, dispatcher *Dispatcher, logger zerolog.Logger) *Server {
	return &Server{
		transport:  transport,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Start begins the server operation: it starts the transport and processes
// incoming requests until the context is cancelled or the transport closes.
func (s *Server) Start(ctx context.Context) error {
	if err := s.transport.Start(ctx); err != nil {
		return fmt.Errorf("failed to start transport: %w", err)
	}

	s.logger.Info().Msg("server started")

	go s.processRequests(ctx)
	return nil
}

// processRequests handles requests sequentially: each tool call, including
// its outbound HTTPS call, completes before the next request is admitted.
func (s *Server) processRequests(ctx context.Context) {
	reqChan := s.transport.Receive()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("server shutting down")
			return
		case req, ok := <-reqChan:
			if !ok {
				return
			}
			s.handleRequest(ctx, req)
		}
	}
}

// handleRequest processes a single JSON-RPC request.
func (s *Server) handleRequest(ctx context.Context, req *domain.Request) {
	s.logger.Debug().Str("method", req.Method).Interface("request_id", req.ID).Msg("received request")

	if req.Method == "" {
		s.sendErrorResponse(req.ID, domain.InvalidRequest, "Invalid Request", "method is required")
		return
	}

	// Notifications carry no ID and expect no response.
	if strings.HasPrefix(req.Method, "notifications/") {
		return
	}

	var response *domain.Response
	switch req.Method {
	case "initialize":
		response = s.handleInitialize(req)
	case "tools/list":
		response = s.handleToolsList(req)
	case "tools/call":
		response = s.handleToolsCall(ctx, req)
	default:
		s.sendErrorResponse(req.ID, domain.MethodNotFound, "Method not found", fmt.Sprintf("unknown method: %s", req.Method))
		return
	}

	if response == nil {
		// Error response already sent by the handler.
		return
	}

	if err := s.transport.Send(response); err != nil {
		s.logger.Error().Err(err).Interface("request_id", req.ID).Msg("failed to send response")
	}
}

// handleInitialize answers the MCP handshake with the server's capabilities.
func (s *Server) handleInitialize(req *domain.Request) *domain.Response {
	result := map[string]interface{}{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    ServerName,
			"version": ServerVersion,
		},
	}

	return &domain.Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

// handleToolsList returns the static catalog. It succeeds regardless of
// configuration state.
func (s *Server) handleToolsList(req *domain.Request) *domain.Response {
	return &domain.Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": s.dispatcher.ListTools(),
		},
	}
}

// handleToolsCall executes a tool call. The dispatcher always produces an
// envelope, so every structurally valid call yields a JSON-RPC result.
func (s *Server) handleToolsCall(ctx context.Context, req *domain.Request) *domain.Response {
	toolReq, err := s.parseToolRequest(req.Params)
	if err != nil {
		s.sendErrorResponse(req.ID, domain.InvalidParams, "Invalid params", err.Error())
		return nil
	}

	return &domain.Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  s.dispatcher.Invoke(ctx, toolReq),
	}
}

// parseToolRequest converts the params field into a ToolRequest. The
// marshal/unmarshal round trip handles both map params and typed structs.
func (s *Server) parseToolRequest(params interface{}) (*domain.ToolRequest, error) {
	if params == nil {
		return nil, fmt.Errorf("params is required for tools/call")
	}

	jsonData, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %w", err)
	}

	var toolReq domain.ToolRequest
	if err := json.Unmarshal(jsonData, &toolReq); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tool request: %w", err)
	}

	if toolReq.Name == "" {
		return nil, fmt.Errorf("tool name is required")
	}
	if toolReq.Arguments == nil {
		toolReq.Arguments = make(map[string]interface{})
	}

	return &toolReq, nil
}

// sendErrorResponse sends a JSON-RPC error response.
func (s *Server) sendErrorResponse(id interface{}, code int, message string, data interface{}) {
	response := &domain.Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &domain.RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}

	if err := s.transport.Send(response); err != nil {
		s.logger.Error().Err(err).Int("error_code", code).Msg("failed to send error response")
	}
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	s.logger.Info().Msg("closing server")
	return s.transport.Close()
}
