// Package tools exposes the resume analysis operations as agent-callable
// tools with JSON schemas. The same tools back both the REST handlers (via
// their direct methods) and the MCP server.
package tools

import (
	"context"
	"encoding/json"
)

// Tool is one agent-callable operation
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description for the agent
	Description() string

	// InputSchema returns the JSON schema for the tool input
	InputSchema() map[string]interface{}

	// Execute runs the tool with the given input
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// Registry holds all available tools
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry
func (r *Registry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in registration order
func (r *Registry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Definitions returns tool metadata for clients that list tools
func (r *Registry) Definitions() []map[string]interface{} {
	definitions := make([]map[string]interface{}, 0, len(r.order))
	for _, tool := range r.List() {
		definitions = append(definitions, map[string]interface{}{
			"name":        tool.Name(),
			"description": tool.Description(),
			"parameters":  tool.InputSchema(),
		})
	}
	return definitions
}

// Result is the envelope every tool execution returns
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewSuccessResult wraps data in a successful result envelope
func NewSuccessResult(data interface{}) (json.RawMessage, error) {
	result := Result{Success: true}
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	result.Data = dataBytes
	return json.Marshal(result)
}

// NewErrorResult wraps an error message in a failed result envelope
func NewErrorResult(errMsg string) (json.RawMessage, error) {
	return json.Marshal(Result{
		Success: false,
		Error:   errMsg,
	})
}
