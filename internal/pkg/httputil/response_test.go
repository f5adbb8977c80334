package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHelpers(t *testing.T) {
	rr := httptest.NewRecorder()
	Created(rr, map[string]string{"id": "campaign-1"})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"campaign-1"}`, rr.Body.String())
}

func TestBadGatewayHidesUpstreamError(t *testing.T) {
	rr := httptest.NewRecorder()
	BadGateway(rr, "llm_unavailable", errors.New("OpenAI API error: quota exceeded"))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "llm_unavailable", body.Code)
	assert.NotContains(t, body.Error, "quota")
}

func TestDecode(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name     string
		body     string
		optional bool
		wantOK   bool
	}{
		{"valid", `{"name":"x"}`, false, true},
		{"unknown field", `{"nom":"x"}`, false, false},
		{"trailing data", `{"name":"x"}{}`, false, false},
		{"empty required", ``, false, false},
		{"empty optional", ``, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			var p payload
			var ok bool
			if tt.optional {
				ok = DecodeOptional(rr, req, &p)
			} else {
				ok = Decode(rr, req, &p)
			}
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			}
		})
	}
}
