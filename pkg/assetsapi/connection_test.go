package assetsapi

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestHeadersAndPath(t *testing.T) {
	var capturedPath string
	var capturedAuthorization string
	var capturedAccept string
	var capturedContentType string
	var capturedIntegration string
	var capturedBody []byte

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			capturedPath = r.URL.String()
			capturedAuthorization = r.Header.Get("Authorization")
			capturedAccept = r.Header.Get("Accept")
			capturedContentType = r.Header.Get("Content-Type")
			capturedIntegration = r.Header.Get("Integration")
			capturedBody, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"ok": true}`))
		},
	))
	defer server.Close()

	api := Connection{
		Host:        server.URL,
		WorkspaceID: "workspace-1",
		AuthString:  "user@example.com:token",
		Logger:      zerolog.Nop(),
		Headers:     map[string]string{"Integration": "assetctl"},
	}

	body, err := api.Request("POST", "/object/create", []byte(`{"a": 1}`))
	assert.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, string(body))

	assert.Equal(t, "/workspace-1/v1/object/create", capturedPath)
	expectedAuthorization := "Basic " + base64.StdEncoding.EncodeToString(
		[]byte("user@example.com:token"))
	assert.Equal(t, expectedAuthorization, capturedAuthorization)
	assert.Equal(t, "application/json", capturedAccept)
	assert.Equal(t, "application/json", capturedContentType)
	assert.Equal(t, "assetctl", capturedIntegration)
	assert.Equal(t, `{"a": 1}`, string(capturedBody))
}

func TestRequestErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(
				`{"errorMessages": ["something is off"],
				  "errors": {"objectTypeId": "unknown"}}`,
			))
		},
	))
	defer server.Close()

	api := Connection{
		Host:        server.URL,
		WorkspaceID: "workspace-1",
		AuthString:  "user:token",
		Logger:      zerolog.Nop(),
	}

	_, err := api.Request("GET", "/object/1", nil)
	var e *Error
	if assert.ErrorAs(t, err, &e) {
		assert.Equal(t, http.StatusBadRequest, e.StatusCode)
		assert.Equal(t,
			[]string{"something is off", "objectTypeId: unknown"},
			e.Messages)
	}
}

func TestRequestRetriesThrottledResponses(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts == 1 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"ok": true}`))
		},
	))
	defer server.Close()

	api := Connection{
		Host:        server.URL,
		WorkspaceID: "workspace-1",
		AuthString:  "user:token",
		Logger:      zerolog.Nop(),
	}

	body, err := api.Request("GET", "/object/1", nil)
	assert.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, string(body))
	assert.Equal(t, 2, attempts)
}

func TestRequestMethodOverride(t *testing.T) {
	var capturedMethod string
	var capturedPath string

	api := Connection{
		Logger: zerolog.Nop(),
		RequestMethod: func(
			method, path string, payload []byte,
		) ([]byte, error) {
			capturedMethod = method
			capturedPath = path
			return []byte(`{}`), nil
		},
	}

	_, err := api.Request("DELETE", "/object/15", nil)
	assert.NoError(t, err)
	assert.Equal(t, "DELETE", capturedMethod)
	assert.Equal(t, "/object/15", capturedPath)
}
