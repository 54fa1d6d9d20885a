// Package config loads and validates application configuration.
//
// Values come from defaults, an optional config.yaml in the working directory,
// and environment variables prefixed with TASKBOARD_ (for example
// TASKBOARD_SERVER_PORT or TASKBOARD_DATABASE_URL), in increasing order of
// precedence. Leaving TASKBOARD_DATABASE_URL unset selects the in-process
// task store; leaving TASKBOARD_CLASSIFIER_URL unset disables the remote
// classifier.
package config
