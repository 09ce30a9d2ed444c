// Package tools implements the MCP tool adapter for mdsel.
//
// The adapter translates the two tool operations into executor calls and
// passes the CLI's output through verbatim. It never parses or validates
// mdsel's stdout: transporting it is the whole job, and malformed output
// is the CLI's problem to fix, not ours to mask.
package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mdseltools/mdselmcp/internal/constants"
	"github.com/mdseltools/mdselmcp/internal/executor"
)

// Runner abstracts the subprocess executor so tests can count spawns.
type Runner interface {
	Execute(ctx context.Context, command string, args []string) executor.Result
}

// IndexRequest asks for the heading structure of one or more files.
type IndexRequest struct {
	Files []string
}

// SelectRequest asks for the content of a selector across files.
type SelectRequest struct {
	Selector string
	Files    []string
}

// Adapter dispatches tool operations to the executor. It holds no state
// across calls; concurrent invocations are independent.
type Adapter struct {
	exec Runner
}

// NewAdapter builds an Adapter on top of a Runner.
func NewAdapter(exec Runner) *Adapter {
	return &Adapter{exec: exec}
}

// Index runs `mdsel index <files...>`.
func (a *Adapter) Index(ctx context.Context, req IndexRequest) *mcp.CallToolResult {
	if err := validateFiles(req.Files); err != nil {
		return mcp.NewToolResultError("Input validation error: " + err.Error())
	}

	res := a.exec.Execute(ctx, executor.CommandIndex, req.Files)
	return toResult(res)
}

// Select runs `mdsel select <selector> <files...>`. The selector is always
// the first positional argument, ahead of the file paths.
func (a *Adapter) Select(ctx context.Context, req SelectRequest) *mcp.CallToolResult {
	if req.Selector == "" {
		return mcp.NewToolResultError("Input validation error: selector must be a non-empty string")
	}
	if err := validateFiles(req.Files); err != nil {
		return mcp.NewToolResultError("Input validation error: " + err.Error())
	}

	args := append([]string{req.Selector}, req.Files...)
	res := a.exec.Execute(ctx, executor.CommandSelect, args)
	return toResult(res)
}

// Call dispatches a named operation with loosely-typed arguments, decoding
// them once into the matching request variant. Unknown names are a client
// error.
func (a *Adapter) Call(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	switch name {
	case constants.ToolIndex:
		files, ok := stringSlice(args["files"])
		if !ok {
			return mcp.NewToolResultError("Input validation error: files must be an array of strings")
		}
		return a.Index(ctx, IndexRequest{Files: files})

	case constants.ToolSelect:
		selector, _ := args["selector"].(string)
		files, ok := stringSlice(args["files"])
		if !ok {
			return mcp.NewToolResultError("Input validation error: files must be an array of strings")
		}
		return a.Select(ctx, SelectRequest{Selector: selector, Files: files})

	default:
		return mcp.NewToolResultError("Unknown tool: " + name)
	}
}

// toResult maps an executor result onto the tool response: stdout verbatim
// on success, stderr as the diagnostic on failure.
func toResult(res executor.Result) *mcp.CallToolResult {
	if res.Success {
		return mcp.NewToolResultText(res.Stdout)
	}
	return mcp.NewToolResultError(res.Stderr)
}

// validateFiles rejects empty sequences and empty entries before anything
// is spawned.
func validateFiles(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("files must be a non-empty array of paths")
	}
	for i, f := range files {
		if f == "" {
			return fmt.Errorf("files[%d] must be a non-empty string", i)
		}
	}
	return nil
}

// stringSlice converts a decoded JSON value to []string. A missing value
// converts to an empty slice, which validation then rejects; a present
// value with non-string entries does not convert.
func stringSlice(v any) ([]string, bool) {
	if v == nil {
		return nil, true
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
