// Package config loads llmextract settings from defaults, an optional YAML
// config file and LLMEXTRACT_* environment variables, in increasing order of
// precedence. OPENAI_API_KEY and OPENAI_API_BASE_URL are honoured as
// fallbacks for the API key and base URL.
package config
