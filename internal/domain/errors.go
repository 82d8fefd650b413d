package domain

import "errors"

var (
	// ErrInvalidLanguage is returned when an unsupported language is submitted.
	ErrInvalidLanguage = errors.New("invalid or unsupported language")

	// ErrEmptySourceCode is returned when source code is missing or empty.
	ErrEmptySourceCode = errors.New("source code cannot be empty")

	// ErrPayloadTooLarge is returned when the source code exceeds the size limit.
	ErrPayloadTooLarge = errors.New("source code payload exceeds maximum size (1MB)")

	// ErrUpstreamUnavailable is returned when an outbound call to the judge or
	// the generative service fails or returns a non-success status.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrRateLimitExceeded is returned when the API rate limit is hit.
	ErrRateLimitExceeded = errors.New("rate limit exceeded, try again later")
)
