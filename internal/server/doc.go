// Package server implements the MCP (Model Context Protocol) server that
// exposes the image views pipeline as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Statistics:
//   - image_averages: Average greyscale value and average R, G, B values
//
// Derived Views:
//   - image_mirror: Inverted (180 degree mirrored) image as PNG
//   - image_grayscale: Grayscale image as PNG
//   - image_views: Averages plus both views, inline or written to disk
//
// # Image Caching
//
// Decoded rasters are cached by path for the lifetime of the server process,
// so repeated tool calls on one file decode it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (invalid params),
//     -32601 (unknown method) or -32700 (unparseable line, null id)
//   - message: Human-readable error description
//   - data: The Go error string
package server
