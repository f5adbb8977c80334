package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func (s *sample) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"plain", `{"name":"a","score":2}`, false},
		{"fenced", "```json\n{\"name\":\"a\",\"score\":2}\n```", false},
		{"bare fence", "```\n{\"name\":\"a\"}\n```", false},
		{"prose", "Here is the report: {...}", true},
		{"unknown field", `{"name":"a","extra":1}`, true},
		{"trailing", `{"name":"a"} {"name":"b"}`, true},
		{"invalid", `{"score":1}`, true},
		{"empty", "   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DecodeJSON[sample]("sample", tt.raw)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "a", v.Name)
				return
			}
			require.Error(t, err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "sample", pe.Target)
			assert.Equal(t, tt.raw, pe.Raw)
		})
	}
}
