// Package llm talks to chat-completion providers.
//
// Client speaks the OpenAI-compatible chat-completions protocol over HTTP
// with bearer auth and a circuit breaker. BedrockCompleter serves the same
// Completer contract through AWS Bedrock. Copywriter layers the fixed
// marketing prompts on top, and DecodeJSON turns model output into typed
// values that must pass validation before callers see them.
package llm
