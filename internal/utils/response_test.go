package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexaidhq/lexaid-backend/internal/utils"
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func TestJSONSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	utils.JSON(w, http.StatusOK, map[string]string{"hello": "world"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Error != nil {
		t.Error("Expected no error payload")
	}
}

func TestErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	utils.Error(w, http.StatusUnauthorized, "AUTH_001", "Authentication required", nil)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}

	resp := decodeResponse(t, w)
	if resp.Success {
		t.Error("Expected success to be false")
	}
	if resp.Error == nil || resp.Error.Code != "AUTH_001" {
		t.Errorf("Expected error code AUTH_001, got %+v", resp.Error)
	}
}

func TestErrorFromAppError(t *testing.T) {
	w := httptest.NewRecorder()
	utils.ErrorFromAppError(w, utils.NewDuplicateError("User", "email", "test@example.com"))

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}

	resp := decodeResponse(t, w)
	if resp.Error.Code != "duplicate_resource" {
		t.Errorf("Expected duplicate_resource, got %q", resp.Error.Code)
	}
	if resp.Error.Details["email"] == "" {
		t.Error("Expected field detail for the duplicate column")
	}
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	utils.NoContent(w)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Error("Expected empty body")
	}
}

func TestUnauthorizedDefaultMessage(t *testing.T) {
	w := httptest.NewRecorder()
	utils.Unauthorized(w, "")

	resp := decodeResponse(t, w)
	if resp.Error.Message != "Authentication required" {
		t.Errorf("Expected default message, got %q", resp.Error.Message)
	}
}
