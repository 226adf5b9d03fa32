package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONResponse asserts that an HTTP response has the expected status code and JSON body
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedBody interface{}) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status code")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"), "unexpected content type")

	if expectedBody != nil {
		expectedJSON, err := json.Marshal(expectedBody)
		require.NoError(t, err, "failed to marshal expected body")

		assert.JSONEq(t, string(expectedJSON), w.Body.String(), "unexpected response body")
	}
}

// AssertErrorResponse asserts that an HTTP response contains an error
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status code")

	var response map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&response)
	require.NoError(t, err, "failed to decode response")

	if expectedMessage != "" {
		assert.Contains(t, response["error"], expectedMessage, "unexpected error message")
	}
}

// DecodeJSON decodes a recorded response body into a value of type T
func DecodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "failed to decode response: %s", w.Body.String())
	return out
}

// AssertHTTPStatus asserts that an HTTP response has the expected status code
func AssertHTTPStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, w.Code, "unexpected HTTP status code: %s", w.Body.String())
}

// MakeJSONRequest creates an HTTP request with JSON body
func MakeJSONRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, url, nil)
	}

	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err, "failed to marshal request body")

	req := httptest.NewRequest(method, url, bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Serve runs a request through a handler and returns the recorded response
func Serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
