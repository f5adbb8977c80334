// Package campaign implements campaign lifecycle management.
//
// The service layer holds the business rules for creating campaigns
// (including model-written content), editing them, moving them through the
// draft/active/paused/completed lifecycle and dispatching personalised
// emails to single leads. It depends on repository interfaces defined in
// this package and should never import from api/.
//
// Repository implementations live in repository/memory/, repository/postgres/
// and repository/redis/.
package campaign
