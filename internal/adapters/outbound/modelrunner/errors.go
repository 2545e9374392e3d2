package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
)

// APIError is a non-2xx reply from the model backend.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("non-2xx response: %s: %s", e.Status, e.Body)
}

var transientStatusCodes = map[int]struct{}{
	http.StatusRequestTimeout:      {},
	http.StatusTooEarly:            {},
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// toBackendErr classifies a client failure. Rate limits, timeouts, 5xx gateway
// errors and dropped connections are transient; everything else is not.
func toBackendErr(err error) *domain.BackendErr {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		_, transient := transientStatusCodes[apiErr.StatusCode]
		return domain.NewBackendErr(transient, apiErr.StatusCode, err)
	}

	if errors.Is(err, context.Canceled) {
		return domain.NewBackendErr(false, 0, err)
	}
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return domain.NewBackendErr(true, 0, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewBackendErr(true, 0, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return domain.NewBackendErr(true, 0, err)
	}

	return domain.NewBackendErr(false, 0, err)
}
