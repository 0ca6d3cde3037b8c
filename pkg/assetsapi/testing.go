package assetsapi

import (
	"fmt"

	"github.com/rs/zerolog"
)

type CapturedRequest struct {
	Method  string
	Payload []byte
}

type MockResponse struct {
	Text   string
	Status int
}

type MockRequest struct {
	Response MockResponse
	Request  CapturedRequest
}

type MockEndpoint struct {
	Requests []MockRequest
	Count    int
}

type MockData map[string]*MockEndpoint

func (mockData *MockData) Get(path string) *MockRequest {
	endpoint, exists := (*mockData)[path]
	if !exists {
		return nil
	}
	if endpoint.Count >= len(endpoint.Requests) {
		return nil
	}
	endpoint.Count++
	return &endpoint.Requests[endpoint.Count-1]
}

func GetTestConnection(mockData MockData) Connection {
	return Connection{
		Logger: zerolog.Nop(),
		RequestMethod: func(
			method, path string, payload []byte,
		) ([]byte, error) {
			mockRequest := mockData.Get(path)
			if mockRequest == nil {
				return nil, fmt.Errorf("%s not found", path)
			}
			mockRequest.Request.Method = method
			mockRequest.Request.Payload = payload

			if mockRequest.Response.Status >= 400 {
				return nil, parseErrorResponse(
					mockRequest.Response.Status,
					[]byte(mockRequest.Response.Text),
				)
			}
			return []byte(mockRequest.Response.Text), nil
		},
	}
}
