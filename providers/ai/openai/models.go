package openai

import (
	"github.com/leofalp/llmextract/internal/jsonschema"
	"github.com/leofalp/llmextract/internal/utils"
	"github.com/leofalp/llmextract/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`

	// Tool calling - new format
	Tools      []chatTool `json:"tools,omitempty"`
	ToolChoice any        `json:"tool_choice,omitempty"` // "auto", "none", "required", or object

	// Tool calling - legacy format
	Functions    []chatFunction `json:"functions,omitempty"`
	FunctionCall any            `json:"function_call,omitempty"` // "auto", "none", or object
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

type chatTool struct {
	Type     string       `json:"type"` // "function"
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// namedFunction forces a call to one function in the legacy format.
type namedFunction struct {
	Name string `json:"name"`
}

// namedTool forces a call to one function in the tools format.
type namedTool struct {
	Type     string        `json:"type"`
	Function namedFunction `json:"function"`
}

// requestFromGeneric converts a provider-agnostic request into the chat
// completions wire format, forcing the request's function when one is set.
func requestFromGeneric(request ai.ChatRequest, mode ToolCallMode) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: request.Model,
	}

	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{Role: string(ai.RoleSystem), Content: request.SystemPrompt})
	}
	for _, msg := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{Role: string(msg.Role), Content: msg.Content})
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.MaxTokens > 0 {
			req.MaxTokens = utils.Ptr(cfg.MaxTokens)
		}
		req.Temperature = cfg.Temperature
	}

	if fn := request.Function; fn != nil {
		def := chatFunction{
			Name:        fn.Name,
			Description: fn.Description,
			Parameters:  fn.Parameters,
		}
		switch mode {
		case ToolCallModeTools:
			req.Tools = []chatTool{{Type: "function", Function: def}}
			req.ToolChoice = namedTool{Type: "function", Function: namedFunction{Name: fn.Name}}
		default:
			req.Functions = []chatFunction{def}
			req.FunctionCall = namedFunction{Name: fn.Name}
		}
	}

	return req
}
