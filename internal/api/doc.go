// Package api handles incoming HTTP requests, request decoding and response
// formatting. It adapts HTTP to the task service: handlers decode the body,
// hand it to the service for validation, and map service errors to status
// codes and safe client messages.
package api
