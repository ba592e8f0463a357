package sanitizer

import (
	"strings"
	"testing"
)

func TestSanitizeCardData(t *testing.T) {
	s := New()
	tests := []struct {
		name   string
		input  string
		hidden string
	}{
		{"plain card number", "pay with 4111 1111 1111 1111 please", "4111"},
		{"dashed card number", "4111-1111-1111-1111", "4111"},
		{"labeled card number", `"card_number": "4111111111111111"`, "4111111111111111"},
		{"labeled cvv", `"card_cvv": "123"`, `"card_cvv": "123"`},
		{"labeled expiry", `"card_expiry": "12/27"`, "12/27"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Sanitize(tt.input)
			if strings.Contains(got, tt.hidden) {
				t.Errorf("Sanitize(%q) = %q, still contains %q", tt.input, got, tt.hidden)
			}
			if !strings.Contains(got, "[FILTERED]") {
				t.Errorf("Sanitize(%q) = %q, expected filter marker", tt.input, got)
			}
		})
	}
}

func TestSanitizeEmailAndPhone(t *testing.T) {
	s := New()

	got := s.Sanitize("contact jane@example.com")
	if strings.Contains(got, "jane@example.com") {
		t.Errorf("email survived: %q", got)
	}

	got = s.Sanitize("call (202) 555-1234 now")
	if strings.Contains(got, "555-1234") {
		t.Errorf("phone survived: %q", got)
	}
}

func TestSanitizeLeavesPlainTextAlone(t *testing.T) {
	s := New()
	input := "Added coupon 9204 to order"
	if got := s.Sanitize(input); got != input {
		t.Errorf("Sanitize(%q) = %q, want unchanged", input, got)
	}

	if got := s.Sanitize(""); got != "" {
		t.Errorf("empty input changed: %q", got)
	}
}

func TestSanitizeArgs(t *testing.T) {
	s := New()
	got := s.SanitizeArgs(map[string]any{
		"card_number": "4111111111111111",
		"card_cvv":    "123",
		"store_id":    "7890",
	})
	if strings.Contains(got, "4111111111111111") || strings.Contains(got, `"123"`) {
		t.Errorf("payment data survived: %q", got)
	}
	if !strings.Contains(got, "7890") {
		t.Errorf("harmless field lost: %q", got)
	}
}
