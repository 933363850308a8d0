// Package resilience groups the portal's fault tolerance building
// blocks: a gobreaker-backed circuit breaker guarding database access
// and retry logic with exponential backoff for transient repository
// failures.
package resilience
