package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// providerStatusErrors maps provider statuses to sentinel errors. Gateway
// failures of any flavour are reported as ErrBadGateway.
var providerStatusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrBadGateway,
	http.StatusGatewayTimeout:      ErrBadGateway,
}

// mapHTTPError turns a non-2xx provider response into one of the sentinel
// errors of this package. The response body is kept in the message for
// the log; a Retry-After hint is appended when the provider sent one.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if retryAfter := resp.Header().Get("Retry-After"); retryAfter != "" {
		detail = strings.TrimSpace(detail + " (retry after " + retryAfter + ")")
	}

	if sentinel, ok := providerStatusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	if detail == "" {
		detail = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, detail)
}
