// Package classification suggests a priority and status for a task
// description.
//
// A Service first asks an optional remote classifier and falls back to an
// ordered list of keyword rules whenever the remote is not configured,
// unreachable, slow, or returns something that is not a JSON object.
// Classify never returns an error: every remote failure resolves to a
// fallback result and is only visible in logs and metrics.
package classification
