//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse checks the status code and the error message. Handlers
// answer in one of two shapes: {"error": "msg"} or {"error": {"message": "msg"}};
// both are accepted here.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		assert.Fail(t, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
		return
	}

	var msg string
	if err := json.Unmarshal(body.Error, &msg); err != nil {
		var wrapped struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body.Error, &wrapped); err != nil {
			assert.Fail(t, fmt.Sprintf("Unrecognized error payload: %s", w.Body.String()))
			return
		}
		msg = wrapped.Message
	}

	if expectedErrorMsg != "" {
		assert.Contains(t, msg, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
