package tracking

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrMalformed is returned for tracking data that cannot be decoded.
	ErrMalformed = errors.New("malformed tracking data")
	// ErrBadSignature is returned for tokens not signed with our key.
	ErrBadSignature = errors.New("tracking token signature mismatch")
)

var b64 = base64.RawURLEncoding

type EventType string

const (
	EventOpen  EventType = "opened"
	EventClick EventType = "clicked"
)

// Event is one recorded open or click.
type Event struct {
	Type       EventType `json:"event_type"`
	CampaignID string    `json:"campaign_id"`
	LeadID     string    `json:"lead_id"`
	MessageID  string    `json:"message_id"`
	URL        string    `json:"url,omitempty"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	Timestamp  time.Time `json:"timestamp"`
}

// Signer packs the identifiers (and optional click target) into URL-safe
// tokens carrying an HMAC-SHA256 tag, and verifies them on the way back.
type Signer struct {
	key []byte
}

// NewSigner returns a Signer keyed by secret.
func NewSigner(secret []byte) Signer {
	return Signer{key: append([]byte(nil), secret...)}
}

// RandomSigner returns a Signer with a fresh random key.
func RandomSigner() (Signer, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return Signer{}, fmt.Errorf("generate tracking key: %w", err)
	}
	return Signer{key: key}, nil
}

// Encode returns payload.tag, both base64url without padding.
func (s Signer) Encode(campaignID, leadID, messageID, target string) string {
	parts := []string{campaignID, leadID, messageID}
	if target != "" {
		parts = append(parts, target)
	}
	payload := []byte(strings.Join(parts, "|"))
	return b64.EncodeToString(payload) + "." + b64.EncodeToString(s.tag(payload))
}

// Decode verifies a token produced by Encode and unpacks it. The click
// target may itself contain "|".
func (s Signer) Decode(token string) (campaignID, leadID, messageID, target string, err error) {
	encPayload, encTag, ok := strings.Cut(token, ".")
	if !ok {
		return "", "", "", "", ErrMalformed
	}
	payload, err := b64.DecodeString(encPayload)
	if err != nil {
		return "", "", "", "", ErrMalformed
	}
	tag, err := b64.DecodeString(encTag)
	if err != nil || !hmac.Equal(tag, s.tag(payload)) {
		return "", "", "", "", ErrBadSignature
	}

	parts := strings.SplitN(string(payload), "|", 4)
	if len(parts) < 3 || parts[0] == "" {
		return "", "", "", "", ErrMalformed
	}
	if len(parts) == 4 {
		target = parts[3]
	}
	return parts[0], parts[1], parts[2], target, nil
}

func (s Signer) tag(payload []byte) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(payload)
	return mac.Sum(nil)
}

func validTarget(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Links builds signed tracking URLs rooted at BaseURL.
type Links struct {
	BaseURL string
	Signer  Signer
}

func (l Links) Open(campaignID, leadID, messageID string) string {
	return strings.TrimRight(l.BaseURL, "/") + "/track/open/" + l.Signer.Encode(campaignID, leadID, messageID, "")
}

func (l Links) Click(campaignID, leadID, messageID, target string) string {
	return strings.TrimRight(l.BaseURL, "/") + "/track/click/" + l.Signer.Encode(campaignID, leadID, messageID, target)
}
