package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-views/internal/imaging"
)

// Reported to clients during initialize.
const (
	ServerName      = "image-views"
	ServerVersion   = "0.1.0"
	ProtocolVersion = "2024-11-05"
)

// JSON-RPC error codes used in responses.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// maxLineBytes bounds a single request line.
const maxLineBytes = 1024 * 1024

// Server answers MCP requests against a shared raster cache.
type Server struct {
	cache   *imaging.ImageCache
	methods map[string]func(*MCPRequest) *MCPResponse
}

// MCPRequest is one line of client input. Requests without an ID are
// notifications and never receive a response.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse carries either Result or Error, never both.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError is the JSON-RPC error object.
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server with an empty raster cache.
func New() *Server {
	s := &Server{cache: imaging.NewImageCache()}
	s.methods = map[string]func(*MCPRequest) *MCPResponse{
		"initialize": s.handleInitialize,
		"tools/list": s.handleToolsList,
		"tools/call": s.handleToolsCall,
		"ping":       s.handlePing,
	}
	return s
}

// Run serves stdin until it is closed, writing responses to stdout.
func (s *Server) Run() error {
	return s.RunIO(os.Stdin, os.Stdout)
}

// RunIO serves newline-delimited JSON-RPC requests from r, writing one
// response per line to w, until r is exhausted.
//
// Blank lines are ignored. A line that is not valid JSON is answered with a
// parse error carrying a null ID, and serving continues.
func (s *Server) RunIO(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var resp *MCPResponse
		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			resp = s.errorResponse(nil, codeParseError, "Parse error", err.Error())
		} else {
			resp = s.handleRequest(&req)
		}
		if resp == nil {
			continue
		}

		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}

// handleRequest dispatches req by method. Notifications (no ID) produce no
// response, whatever their method.
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	if req.ID == nil {
		return nil
	}
	handler, ok := s.methods[req.Method]
	if !ok {
		return s.errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
	return handler(req)
}

func (s *Server) result(req *MCPRequest, v interface{}) *MCPResponse {
	return &MCPResponse{JSONRPC: "2.0", ID: req.ID, Result: v}
}

func (s *Server) handlePing(req *MCPRequest) *MCPResponse {
	return s.result(req, map[string]interface{}{})
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return s.result(req, map[string]interface{}{
		"protocolVersion": ProtocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    ServerName,
			"version": ServerVersion,
		},
	})
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return s.result(req, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
