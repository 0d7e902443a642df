package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/pathwise-app/pathwise_client/dto"
	"github.com/pathwise-app/pathwise_client/shared"
)

func TestRenderErrorListsInvalidFields(t *testing.T) {
	req := dto.LoginRequest{Email: "not-an-email"}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}

	rendered := renderError(shared.NewBadRequestError(err, "Validation failed"))
	msg := rendered.Error()
	if !strings.Contains(msg, "Invalid email format") {
		t.Fatalf("message %q missing email detail", msg)
	}
	if !strings.Contains(msg, "Password is required") {
		t.Fatalf("message %q missing password detail", msg)
	}
}

func TestRenderErrorShortMessage(t *testing.T) {
	rendered := renderError(shared.NewSessionExpiredError("Session expired, please log in again"))
	if got := rendered.Error(); got != "Session expired, please log in again" {
		t.Fatalf("message %q", got)
	}
}

func TestRenderErrorPassesThrough(t *testing.T) {
	plain := errors.New("something else")
	if got := renderError(plain); got != plain {
		t.Fatalf("plain error rewritten to %v", got)
	}
	if renderError(nil) != nil {
		t.Fatal("nil error rewritten")
	}
}
