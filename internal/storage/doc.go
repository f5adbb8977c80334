// Package storage archives generated reports as JSON documents, either in
// S3 or in process memory.
package storage
