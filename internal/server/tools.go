package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathSchema is the input schema shared by tools that take only a path.
func pathSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Absolute path to the image file",
			},
		},
		"required": []string{"path"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, decoded format and file size. Supports PNG, JPEG, GIF, BMP and WebP.",
			InputSchema: pathSchema(),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: pathSchema(),
		},

		// Statistics
		{
			Name:        "image_averages",
			Description: "Compute the average greyscale (BT.601 luma) value and the average R, G and B values over every pixel. Averages are truncated to whole numbers.",
			InputSchema: pathSchema(),
		},

		// Derived Views
		{
			Name:        "image_mirror",
			Description: "Return the inverted view: the image mirrored horizontally and vertically (a 180 degree rotation) as base64-encoded PNG. Colors are not changed.",
			InputSchema: pathSchema(),
		},
		{
			Name:        "image_grayscale",
			Description: "Return the grayscale view as a base64-encoded 8-bit grayscale PNG, using the same luma as image_averages.",
			InputSchema: pathSchema(),
		},
		{
			Name:        "image_views",
			Description: "Compute everything at once: averages, inverted view and grayscale view. Optionally write the two views as PNG files to output_dir instead of returning them inline.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Optional directory to write <name>_inverted.png and <name>_grayscale.png into",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
