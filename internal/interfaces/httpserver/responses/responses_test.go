package responses_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"aura-server/internal/interfaces/httpserver/middlewares"
	"aura-server/internal/interfaces/httpserver/responses"
	"aura-server/internal/utils/platformerrors"
)

func TestHandleErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		errorType platformerrors.ErrorType
		status    int
	}{
		{platformerrors.ErrorTypeNotFound, http.StatusNotFound},
		{platformerrors.ErrorTypeValidation, http.StatusUnprocessableEntity},
		{platformerrors.ErrorTypeInvalidRequest, http.StatusBadRequest},
		{platformerrors.ErrorTypeConflict, http.StatusBadRequest},
		{platformerrors.ErrorTypeUnauthorized, http.StatusUnauthorized},
		{platformerrors.ErrorTypeForbidden, http.StatusForbidden},
		{platformerrors.ErrorTypeDatabaseError, http.StatusInternalServerError},
		{platformerrors.ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest("GET", "/test", nil)

		err := platformerrors.NewError(context.Background(), platformerrors.LayerDomain,
			tc.errorType, "boom", nil, "uuid-under-test")
		responses.HandleError(ctx, err)

		if w.Code != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.errorType, tc.status, w.Code)
			continue
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: failed to parse response: %v", tc.errorType, err)
		}
		if body["error"] != "boom" {
			t.Errorf("%s: expected error 'boom', got %v", tc.errorType, body["error"])
		}
		if body["code"] != "uuid-under-test" {
			t.Errorf("%s: expected the error UUID, got %v", tc.errorType, body["code"])
		}
	}
}

func TestHandleErrorHidesUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", "/test", nil)

	responses.HandleError(ctx, errors.New("pq: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("Expected generic message, got %v", body["error"])
	}

	if strings.Contains(w.Body.String(), "connection refused") {
		t.Error("Internal error details must not reach the client")
	}
}

func TestHandleNewErrorEchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.GET("/fails", func(c *gin.Context) {
		responses.HandleNewError(c, platformerrors.ErrorTypeInvalidRequest, "bad input", "uuid-req-id")
	})

	req, _ := http.NewRequest("GET", "/fails", nil)
	req.Header.Set("X-Request-Id", "req-test-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body["requestId"] != "req-test-123" {
		t.Errorf("Expected the inbound request ID in the envelope, got %v", body["requestId"])
	}
	if w.Header().Get("X-Request-Id") != "req-test-123" {
		t.Errorf("Expected the request ID echoed in the response header, got %q", w.Header().Get("X-Request-Id"))
	}
}
