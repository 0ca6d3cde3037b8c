package assetsapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

/*
Error type for Assets API error responses.

The remote reports errors Jira-style, with a list of general messages
and a map of field-specific ones; both are flattened into Messages.
Inspect with errors.As:

    var e *assetsapi.Error
    if errors.As(err, &e) && e.StatusCode == 404 { ... }
*/
type Error struct {
	StatusCode int
	Messages   []string
}

func (e *Error) Error() string {
	result := make([]string, 0, len(e.Messages)+1)
	result = append(result, fmt.Sprint(e.StatusCode))
	result = append(result, e.Messages...)
	return strings.Join(result, ", ")
}

type errorBody struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

func parseErrorResponse(statusCode int, body []byte) *Error {
	if statusCode < 400 {
		return nil
	}
	var parsed errorBody

	// Intentionally ignore parse errors
	_ = json.Unmarshal(body, &parsed)

	messages := append([]string{}, parsed.ErrorMessages...)
	fields := make([]string, 0, len(parsed.Errors))
	for field := range parsed.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		messages = append(messages,
			fmt.Sprintf("%s: %s", field, parsed.Errors[field]))
	}

	return &Error{StatusCode: statusCode, Messages: messages}
}

type ThrottleError struct {
	StatusCode int
	RetryAfter int
}

func (e *ThrottleError) Error() string {
	return fmt.Sprintf(
		"Response error code %d, retry after %d", e.StatusCode, e.RetryAfter,
	)
}

func parseThrottleResponse(response *http.Response) *ThrottleError {
	if response.StatusCode != 429 &&
		response.StatusCode != 502 &&
		response.StatusCode != 503 &&
		response.StatusCode != 504 {
		return nil
	}
	if response.StatusCode == 502 ||
		response.StatusCode == 503 ||
		response.StatusCode == 504 {
		return &ThrottleError{response.StatusCode, 10}
	}
	retryAfter, err := strconv.Atoi(response.Header.Get("Retry-After"))
	if err != nil {
		return &ThrottleError{response.StatusCode, 1}
	}
	return &ThrottleError{response.StatusCode, retryAfter}
}
