package wineapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/VineyardSim_Go/internal/domain"
)

// APIError is a non-success response from the remote service
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("wine API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("wine API returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status onto the domain error the handlers understand
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case e.StatusCode >= http.StatusInternalServerError, e.StatusCode == http.StatusTooManyRequests:
		return domain.ErrUpstreamUnavailable
	}
	return nil
}

func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError || apiErr.StatusCode == http.StatusTooManyRequests
	}
	return errors.Is(err, domain.ErrUpstreamUnavailable)
}
