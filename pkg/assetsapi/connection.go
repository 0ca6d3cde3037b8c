package assetsapi

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
)

type Connection struct {
	Host        string
	WorkspaceID string
	AuthString  string
	Client      http.Client
	Headers     map[string]string
	Logger      zerolog.Logger

	// OnPage, when set, is invoked after every fetched search page
	// with the number of values accumulated so far and the remote's
	// total count. Used for progress display.
	OnPage func(fetched, total int)

	// Used for testing
	RequestMethod func(method, path string, payload []byte) ([]byte, error)
}

/*
Request
Issue a single API call and return the raw response body. Paths that
start with "/" are prefixed with the workspace base path. Throttled
responses (429 and gateway errors) are retried a bounded number of
times, honoring Retry-After; every other failure is returned
immediately as an *Error.
*/
func (c *Connection) Request(
	method, path string, payload []byte,
) ([]byte, error) {
	if c.RequestMethod != nil {
		return c.RequestMethod(method, path, payload)
	}

	url := path
	if strings.HasPrefix(path, "/") {
		url = fmt.Sprintf("%s/%s/v1%s", c.Host, c.WorkspaceID, path)
	}

	var body []byte
	err := retry.Do(
		func() error {
			var err error
			body, err = c.doRequest(method, url, payload)
			return err
		},
		retry.RetryIf(func(err error) bool {
			var e *ThrottleError
			return errors.As(err, &e)
		}),
		retry.Attempts(4),
		retry.LastErrorOnly(true),
		retry.DelayType(func(
			n uint, err error, config *retry.Config,
		) time.Duration {
			var e *ThrottleError
			if errors.As(err, &e) && e.RetryAfter > 0 {
				return time.Duration(e.RetryAfter) * time.Second
			}
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.Logger.Warn().
				Err(err).
				Uint("attempt", n+1).
				Str("method", method).
				Str("url", url).
				Msg("request throttled, retrying")
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Connection) doRequest(
	method, url string, payload []byte,
) ([]byte, error) {
	requestObj, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	requestObj.Header.Add("Accept", "application/json")
	requestObj.Header.Add("Content-Type", "application/json")
	requestObj.Header.Add(
		"Authorization",
		"Basic "+base64.StdEncoding.EncodeToString([]byte(c.AuthString)),
	)
	for header, value := range c.Headers {
		requestObj.Header.Add(header, value)
	}

	c.Logger.Debug().
		Str("method", method).
		Str("url", url).
		Msg("api request")

	response, err := c.Client.Do(requestObj)
	if err != nil {
		return nil, err
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	throttleResponse := parseThrottleResponse(response)
	if throttleResponse != nil {
		return nil, throttleResponse
	}

	errorResponse := parseErrorResponse(response.StatusCode, body)
	if errorResponse != nil {
		return nil, errorResponse
	}

	return body, nil
}
