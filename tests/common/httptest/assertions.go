//go:build unit

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx with a target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "Failed to decode response JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the status and the {success:false, message} body.
// An empty expectedMsg skips the message check.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode error response JSON: %s", w.Body.String()) {
		return
	}
	if assert.NotNil(t, body.Success, "error response must carry a success flag") {
		assert.False(t, *body.Success)
	}
	if expectedMsg != "" {
		assert.Contains(t, body.Message, expectedMsg)
	}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
