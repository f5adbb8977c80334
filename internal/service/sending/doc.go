// Package sending delivers single outreach emails.
//
// Two Sender implementations exist: SimulatedSender, which succeeds with a
// configured probability and never contacts a network, and SESSender, which
// delivers through AWS SES v2 under a send-rate limit.
package sending
