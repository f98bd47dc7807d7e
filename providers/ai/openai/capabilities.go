package openai

import "strings"

// Capabilities describes the request features an OpenAI-compatible endpoint
// understands. They are detected from the base URL and can be overridden
// with [OpenAIProvider.WithCapabilities] for non-standard hosts.
type Capabilities struct {
	// ToolCallMode selects the wire format used to force the structured
	// output function call.
	ToolCallMode ToolCallMode
}

// ToolCallMode specifies which function-calling wire format a provider
// understands.
type ToolCallMode string

const (
	// ToolCallModeFunctions selects the functions/function_call request
	// format. The answer arrives in message.function_call.
	ToolCallModeFunctions ToolCallMode = "functions"

	// ToolCallModeTools selects the tools/tool_choice request format. The
	// answer arrives in message.tool_calls.
	ToolCallModeTools ToolCallMode = "tools"
)

// detectCapabilities attempts to detect provider capabilities based on baseURL
func detectCapabilities(baseURL string) Capabilities {
	baseURL = strings.ToLower(baseURL)

	switch {
	// Real OpenAI API and Azure deployments still accept the functions format.
	case strings.Contains(baseURL, "api.openai.com"),
		strings.Contains(baseURL, "azure.com"),
		strings.Contains(baseURL, "openai.azure"):
		return Capabilities{ToolCallMode: ToolCallModeFunctions}

	// Ollama
	case strings.Contains(baseURL, "localhost:11434"), strings.Contains(baseURL, "127.0.0.1:11434"):
		return Capabilities{ToolCallMode: ToolCallModeFunctions}

	// OpenRouter normalises everything to tools.
	case strings.Contains(baseURL, "openrouter.ai"):
		return Capabilities{ToolCallMode: ToolCallModeTools}
	}

	// Conservative default for unknown providers
	return Capabilities{ToolCallMode: ToolCallModeTools}
}
