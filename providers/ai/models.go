package ai

import (
	"github.com/leofalp/llmextract/internal/jsonschema"
)

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a single structured-output request.
type ChatRequest struct {
	Model            string               `json:"model,omitempty"`             // Model name or identifier
	SystemPrompt     string               `json:"system_prompt,omitempty"`     // Optional system prompt
	Messages         []Message            `json:"messages"`                    // Conversation messages, excluding the system prompt
	Function         *FunctionDescription `json:"function,omitempty"`          // Function the model is forced to call
	GenerationConfig *GenerationConfig    `json:"generation_config,omitempty"` // Optional generation configuration
}

// FunctionDescription declares the function whose arguments carry the
// structured output.
type FunctionDescription struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// Message represents a single message in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
}

type GenerationConfig struct {
	MaxTokens   int      `json:"max_tokens,omitempty"`  // Optional max tokens for the response
	Temperature *float32 `json:"temperature,omitempty"` // Sampling temperature [0..2]. Nil leaves the backend default.
}

/*
	##### PROVIDER OUTPUT #####
*/

// RawResponse is a completed backend response. Body is passed to the
// extraction pipeline untouched.
type RawResponse struct {
	RequestID  string `json:"request_id"`  // Client-generated correlation id
	Model      string `json:"model"`       // Model the request was sent to
	StatusCode int    `json:"status_code"` // HTTP status code
	Body       string `json:"body"`        // Raw response body text
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Middle llm response
)
