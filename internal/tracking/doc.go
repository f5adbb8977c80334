// Package tracking serves the open pixel and click redirect embedded in
// outgoing emails and tallies the events per campaign.
//
// Tracking data is the base64url encoding of
// "campaignID|leadID|messageID" with a fourth "|url" segment for clicks.
// Recorded counts are reported as-is; campaign rates are never derived
// from them.
package tracking
