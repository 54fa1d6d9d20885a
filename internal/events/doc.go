// Package events publishes task lifecycle events.
//
// The task service emits a TaskEvent after every successful create, update
// and delete. Handlers registered with an emitter react to them without the
// service knowing who they are; MetricsHandler counts them for /metrics.
package events
