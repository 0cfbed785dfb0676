package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorRendersMessageOrKind(t *testing.T) {
	t.Parallel()

	if got := E(KindInvalidInput, "bad field").Error(); got != "bad field" {
		t.Fatalf("Error() = %q, want %q", got, "bad field")
	}
	if got := (Error{Kind: KindUnavailable}).Error(); got != "unavailable" {
		t.Fatalf("Error() = %q, want %q", got, "unavailable")
	}
}

func TestHTTPStatusMapsKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{E(KindInvalidInput, "bad"), http.StatusBadRequest},
		{E(KindNotFound, "missing"), http.StatusNotFound},
		{E(KindUnavailable, "down"), http.StatusServiceUnavailable},
		{E(KindUnknown, "boom"), http.StatusInternalServerError},
		{errors.New("untyped"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", E(KindInvalidInput, "bad"))
	if got := HTTPStatus(wrapped); got != http.StatusBadRequest {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusBadRequest)
	}
}
