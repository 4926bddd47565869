package models

import (
	"errors"
	"testing"
)

func TestBookingTransitions(t *testing.T) {
	b := &Booking{Status: StatusPending}

	if err := b.Confirm(); err != nil {
		t.Fatalf("confirm pending: %v", err)
	}
	if b.Status != StatusConfirmed {
		t.Fatalf("status = %s, want confirmed", b.Status)
	}

	var fin FinalizedError
	if err := b.Confirm(); !errors.As(err, &fin) || fin.Status != StatusConfirmed {
		t.Fatalf("confirm confirmed: got %v, want FinalizedError{confirmed}", err)
	}
	if err := b.Reject(); !errors.As(err, &fin) {
		t.Fatalf("reject confirmed: got %v, want FinalizedError", err)
	}

	r := &Booking{Status: StatusPending}
	if err := r.Reject(); err != nil {
		t.Fatalf("reject pending: %v", err)
	}
	if r.Status != StatusRejected {
		t.Fatalf("status = %s, want rejected", r.Status)
	}
	if err := r.Confirm(); !errors.As(err, &fin) || fin.Status != StatusRejected {
		t.Fatalf("confirm rejected: got %v, want FinalizedError{rejected}", err)
	}
}

func TestFinalizedErrorMessage(t *testing.T) {
	err := FinalizedError{Status: StatusRejected}
	if got := err.Error(); got != "booking is already rejected" {
		t.Fatalf("message = %q", got)
	}
}
