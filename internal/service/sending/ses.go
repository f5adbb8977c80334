package sending

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"golang.org/x/time/rate"

	"github.com/quotable/leadintel/internal/pkg/logger"
)

// SESAPI is the subset of the SES v2 client used for delivery.
type SESAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends emails via AWS SES using the SDK v2.
type SESSender struct {
	client           SESAPI
	configurationSet string
	limiter          *rate.Limiter
	now              func() time.Time
}

// SESOptions configure NewSESSender.
type SESOptions struct {
	ConfigurationSet string
	// MaxSendRate is the account's messages-per-second quota. Zero disables
	// throttling.
	MaxSendRate float64
}

// NewSESSender wraps an SES client.
func NewSESSender(client SESAPI, opts SESOptions) *SESSender {
	s := &SESSender{client: client, configurationSet: opts.ConfigurationSet, now: time.Now}
	if opts.MaxSendRate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.MaxSendRate), 1)
	}
	return s
}

// NewSESClient builds an SES v2 client. Static credentials are used when
// both keys are set; otherwise the default AWS chain applies.
func NewSESClient(ctx context.Context, region, accessKey, secretKey string) (*sesv2.Client, error) {
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return sesv2.NewFromConfig(cfg), nil
}

// Send delivers a single email through AWS SES.
func (s *SESSender) Send(ctx context.Context, msg *Message) (*Result, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", msg.From.Name, msg.From.Email)),
		Destination:      &types.Destination{ToAddresses: []string{formatAddress(msg.To)}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
				},
			},
		},
		EmailTags: []types.MessageTag{
			{Name: aws.String("campaign_id"), Value: aws.String(msg.CampaignID)},
		},
	}
	if msg.LeadID != "" {
		input.EmailTags = append(input.EmailTags,
			types.MessageTag{Name: aws.String("lead_id"), Value: aws.String(msg.LeadID)})
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}
	if s.configurationSet != "" {
		input.ConfigurationSetName = aws.String(s.configurationSet)
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		sendsTotal.WithLabelValues("ses", "failed").Inc()
		log.Printf("[sending.SES] failed to send to %s: %v", logger.RedactEmail(msg.To.Email), err)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	messageID := aws.ToString(out.MessageId)
	sendsTotal.WithLabelValues("ses", "sent").Inc()
	log.Printf("[sending.SES] sent to %s (id: %s)", logger.RedactEmail(msg.To.Email), messageID)
	return &Result{MessageID: messageID, SentAt: s.now()}, nil
}

func formatAddress(a Address) string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}
