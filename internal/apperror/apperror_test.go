package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("test %d not found", 7), http.StatusNotFound},
		{"validation", Validation("bad mode"), http.StatusBadRequest},
		{"conflict", Conflict("email taken"), http.StatusConflict},
		{"unauthorized", Unauthorized("expired"), http.StatusUnauthorized},
		{"upstream", Upstream("db down", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("outer: %w", NotFound("history")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("failed to load history", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped error to match its cause")
	}
	if Message(err) != "failed to load history" {
		t.Errorf("Message() = %q", Message(err))
	}
	if got := err.Error(); got != "failed to load history: connection refused" {
		t.Errorf("Error() = %q", got)
	}
	if !Is(err, KindUpstreamUnavailable) {
		t.Error("expected upstream kind")
	}
	if Is(nil, KindInternal) {
		t.Error("nil error should not match any kind")
	}
}
