package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-views/internal/imaging"
	"github.com/ironsheep/image-views/internal/report"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_views").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return s.result(req, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Statistics
	case "image_averages":
		return s.handleImageAverages(args)

	// Derived Views
	case "image_mirror":
		return s.handleImageMirror(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_views":
		return s.handleImageViews(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. An empty data string is
// left out of the error object.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{JSONRPC: "2.0", ID: id, Error: e}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// loadRaster unmarshals path-only arguments and loads the raster they name.
func (s *Server) loadRaster(args json.RawMessage) (*imaging.Raster, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.cache.Load(a.Path)
}

// === Statistics Handlers ===

// AveragesResult is the image_averages response.
type AveragesResult struct {
	*imaging.Averages

	// Lines are the averages as display text, luminance first.
	Lines []string `json:"lines"`
}

func (s *Server) handleImageAverages(args json.RawMessage) (interface{}, error) {
	r, err := s.loadRaster(args)
	if err != nil {
		return nil, err
	}
	avg, err := imaging.Summarize(r)
	if err != nil {
		return nil, err
	}
	return &AveragesResult{
		Averages: avg,
		Lines:    report.Lines(avg.Luminance, avg.Channels),
	}, nil
}

// === Derived View Handlers ===

func (s *Server) handleImageMirror(args json.RawMessage) (interface{}, error) {
	r, err := s.loadRaster(args)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.Mirror(r))
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	r, err := s.loadRaster(args)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(imaging.ToGrayscale(r))
}

type imageViewsArgs struct {
	Path      string `json:"path"`
	OutputDir string `json:"output_dir"`
}

// ViewsResult is the image_views response. Exactly one of the inline images
// or Written is set, depending on whether output_dir was given.
type ViewsResult struct {
	Width     int                   `json:"width"`
	Height    int                   `json:"height"`
	Averages  AveragesResult        `json:"averages"`
	Inverted  *imaging.EncodedImage `json:"inverted,omitempty"`
	Grayscale *imaging.EncodedImage `json:"grayscale,omitempty"`
	Written   *report.Written       `json:"written,omitempty"`
}

func (s *Server) handleImageViews(args json.RawMessage) (interface{}, error) {
	var a imageViewsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	v, err := imaging.Process(r)
	if err != nil {
		return nil, err
	}

	result := &ViewsResult{
		Width:  r.Width(),
		Height: r.Height(),
		Averages: AveragesResult{
			Averages: v.Averages,
			Lines:    report.Lines(v.Averages.Luminance, v.Averages.Channels),
		},
	}

	if a.OutputDir != "" {
		result.Written, err = report.WriteViews(a.OutputDir, report.BaseName(a.Path), v)
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	if result.Inverted, err = imaging.EncodePNG(v.Inverted); err != nil {
		return nil, err
	}
	if result.Grayscale, err = imaging.EncodePNG(v.Grayscale); err != nil {
		return nil, err
	}
	return result, nil
}
