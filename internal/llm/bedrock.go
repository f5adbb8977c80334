package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// ModelInvoker is the subset of the Bedrock runtime client we use.
type ModelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type bedrockContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type bedrockMessage struct {
	Role    string                `json:"role"`
	Content []bedrockContentBlock `json:"content"`
}

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
	Temperature      float64          `json:"temperature,omitempty"`
}

type bedrockResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// BedrockCompleter serves completions from an Anthropic model on Bedrock.
// The Model field of a Request is ignored; the configured model id is used.
type BedrockCompleter struct {
	client  ModelInvoker
	modelID string
}

// NewBedrockCompleter wraps an existing invoker.
func NewBedrockCompleter(client ModelInvoker, modelID string) *BedrockCompleter {
	return &BedrockCompleter{client: client, modelID: modelID}
}

// NewBedrockCompleterFromRegion loads the default AWS credential chain.
func NewBedrockCompleterFromRegion(ctx context.Context, region, modelID string) (*BedrockCompleter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewBedrockCompleter(bedrockruntime.NewFromConfig(cfg), modelID), nil
}

// Complete folds system messages into the Anthropic system field and sends
// the rest as the conversation.
func (b *BedrockCompleter) Complete(ctx context.Context, req Request) (string, error) {
	var system []string
	msgs := make([]bedrockMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		msgs = append(msgs, bedrockMessage{
			Role:    m.Role,
			Content: []bedrockContentBlock{{Type: "text", Text: m.Content}},
		})
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	body, err := json.Marshal(bedrockRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        maxTokens,
		System:           strings.Join(system, "\n\n"),
		Messages:         msgs,
		Temperature:      temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()
	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	requestDuration.WithLabelValues("bedrock").Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues("bedrock", "error").Inc()
		return "", fmt.Errorf("Bedrock API error: %w", err)
	}

	var resp bedrockResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		requestsTotal.WithLabelValues("bedrock", "error").Inc()
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	var text strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if text.Len() == 0 {
		requestsTotal.WithLabelValues("bedrock", "error").Inc()
		return "", ErrEmptyResponse
	}
	requestsTotal.WithLabelValues("bedrock", "ok").Inc()
	return text.String(), nil
}
