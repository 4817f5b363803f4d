package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-config-sets/models"
	"github.com/go-resty/resty/v2"
)

// APIError is returned for every non-2xx response. It unwraps to the
// sentinel matching the status code and keeps the server message.
type APIError struct {
	StatusCode int
	Msg        string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Msg:        responseMessage(resp),
		Err:        statusErrors[resp.StatusCode()],
	}
}

// responseMessage returns the "msg" field of the response envelope, the raw
// body when it is not an envelope, or the status text for an empty body.
func responseMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var envelope models.APIResponse
	if err := json.Unmarshal([]byte(body), &envelope); err == nil && envelope.Msg != "" {
		return envelope.Msg
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
