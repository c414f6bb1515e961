package pkg

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb unavailable")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if !strings.Contains(err.Error(), "dynamodb unavailable") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("CHARGE_FAILED", "Charge failed", http.StatusPaymentRequired).WithDetails(map[string]any{"error": "declined"})
	if simple.HTTPStatus != http.StatusPaymentRequired || simple.ToHTTPError().Details == nil {
		t.Fatalf("unexpected error: %+v", simple)
	}
}
