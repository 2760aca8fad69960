// Package request executes adapter requests over net/http with rate limiting
// and retries on transient failures.
package request
