package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Validator is implemented by types that check their own invariants after
// decoding.
type Validator interface {
	Validate() error
}

// DecodeJSON strictly decodes model output into T and validates it. Markdown
// code fences around the JSON are tolerated; unknown fields, trailing data,
// and validation failures are not. Every failure is a *ParseError.
func DecodeJSON[T any, PT interface {
	*T
	Validator
}](target, raw string) (*T, error) {
	body := stripFences(raw)
	if body == "" {
		parseFailures.WithLabelValues(target).Inc()
		return nil, &ParseError{Target: target, Raw: raw, Err: errors.New("empty output")}
	}

	var v T
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		parseFailures.WithLabelValues(target).Inc()
		return nil, &ParseError{Target: target, Raw: raw, Err: err}
	}
	if dec.More() {
		parseFailures.WithLabelValues(target).Inc()
		return nil, &ParseError{Target: target, Raw: raw, Err: errors.New("trailing data after JSON value")}
	}
	if err := PT(&v).Validate(); err != nil {
		parseFailures.WithLabelValues(target).Inc()
		return nil, &ParseError{Target: target, Raw: raw, Err: err}
	}
	return &v, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop an optional language tag on the opening fence.
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
