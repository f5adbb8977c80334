// Package postgres implements the campaign and lead repositories against
// PostgreSQL using database/sql and lib/pq. Schema lives in
// migrations/ and is applied by cmd/migrate.
package postgres
