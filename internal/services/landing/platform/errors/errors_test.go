package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: http.StatusOK},
		{err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{err: E(KindMethodNotAllowed, "post"), want: http.StatusMethodNotAllowed},
		{err: E(KindRateLimited, "slow down"), want: http.StatusTooManyRequests},
		{err: E(KindUnknown, "unknown"), want: http.StatusInternalServerError},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestHTTPStatusUnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("serve /nope: %w", E(KindNotFound, "missing"))
	if got := HTTPStatus(err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, http.StatusNotFound)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}

func TestPublicMessageHidesInternalDetail(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(errors.New("template: disk on fire")); got != "Internal Server Error" {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(E(KindNotFound, "/secret missing")); got != "Not Found" {
		t.Fatalf("PublicMessage() = %q", got)
	}
}
