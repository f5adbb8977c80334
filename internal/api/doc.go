// Package api exposes leads, campaigns, analytics, optimization reports,
// market intelligence and tracking over HTTP.
package api
