package classification

import "errors"

var (
	// ErrClassificationUnavailable is returned by a Remote that could not be
	// reached or answered with a non-success status.
	ErrClassificationUnavailable = errors.New("classification unavailable")

	// ErrInvalidResponse is returned when the remote answered with a payload
	// that is not a JSON object.
	ErrInvalidResponse = errors.New("invalid classification response")
)
