// Package domain contains the core business entities of the task board:
// the Task itself, its priority and status enumerations, the transient
// ClassificationResult and the Analytics breakdown. It also holds the
// validator that normalizes raw client input into a fully-defaulted
// TaskInput before anything reaches storage or classification.
//
// The package is independent of any storage engine or transport.
package domain
