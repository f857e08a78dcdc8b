package rbac

import (
	"strings"
	"testing"

	"octomate/internal/validate"
)

func TestDisplayValueNeverLeaksUnreadable(t *testing.T) {
	for _, value := range []string{"S1234567A", "secret", " "} {
		got := DisplayValue(value, New(false, false, false), nil)
		if got != RedactedPlaceholder {
			t.Fatalf("expected placeholder for %q, got %q", value, got)
		}
	}
}

func TestDisplayValueDistinguishesEmptyFromDenied(t *testing.T) {
	empty := DisplayValue("", New(true, false, false), nil)
	denied := DisplayValue("", New(false, false, false), nil)
	if empty == denied {
		t.Fatal("readable-empty must differ from no-access")
	}
	if empty != EmptyPlaceholder {
		t.Fatalf("expected empty indicator, got %q", empty)
	}
}

func TestDisplayValueMasksNRIC(t *testing.T) {
	mask := func(v string) string { return validate.MaskNRIC(v, false) }
	got := DisplayValue("S1234567A", New(true, false, true), mask)

	if !strings.HasPrefix(got, "S") || !strings.HasSuffix(got, "567A") {
		t.Fatalf("mask should keep first char and last 4, got %q", got)
	}
	if strings.Contains(got, "1234567") {
		t.Fatalf("full digit sequence leaked: %q", got)
	}
	if got == "S1234567A" {
		t.Fatal("masked render returned the raw value")
	}
}

func TestDisplayValueUnmaskedPassThrough(t *testing.T) {
	if got := DisplayValue("Engineering", New(true, true, false), nil); got != "Engineering" {
		t.Fatalf("readable value should pass through, got %q", got)
	}
}

func TestDisplayValueMaskedWithoutMaskFunc(t *testing.T) {
	// No mask function supplied: the raw value passes through, matching
	// the form fields that manage their own reveal action.
	if got := DisplayValue("value", New(true, false, true), nil); got != "value" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestEditable(t *testing.T) {
	writable := New(true, true, false)
	if Editable(writable, false) {
		t.Fatal("not editable outside editing mode")
	}
	if !Editable(writable, true) {
		t.Fatal("writable field should be editable in editing mode")
	}
	if Editable(New(true, false, false), true) {
		t.Fatal("read-only field must never be editable")
	}
}
