package furtrack

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingThumbnailFields is returned by GetThumbnail when the post
// payload lacks one of the fields the thumbnail URL is built from.
var ErrMissingThumbnailFields = errors.New("post is missing thumbnail fields")

// APIError represents a non-success response from the FurTrack API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("furtrack API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error is a 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the error indicates a missing or rejected
// API key.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
