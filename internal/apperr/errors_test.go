package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	if KindOf(NotFound("nope")) != KindNotFound {
		t.Fatal("wrong kind for not found")
	}
	if KindOf(errors.New("plain")) != KindInternal {
		t.Fatal("plain errors must default to internal")
	}

	// The kind survives wrapping.
	wrapped := fmt.Errorf("outer: %w", Forbidden("no"))
	if KindOf(wrapped) != KindForbidden {
		t.Fatal("kind lost through wrapping")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Invalid("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{Upstream("minio", errors.New("down")), http.StatusBadGateway},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("failed to delete thumbnail", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause lost")
	}
	if err.Error() != "failed to delete thumbnail: connection refused" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
