// Package openai implements the llmextract provider interface for
// OpenAI-compatible chat completions APIs.
//
// The main entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment. The structured output function
// is forced either through the functions/function_call format or the
// tools/tool_choice format, chosen from the base URL. Use
// [OpenAIProvider.WithCapabilities] to override the detection.
//
// The provider returns the response body as text; it never decodes the
// completion envelope.
package openai
