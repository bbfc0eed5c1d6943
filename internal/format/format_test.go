package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		locale string
	}{
		{name: "unknown currency", code: "ZZZ", locale: "en"},
		{name: "empty currency", code: "", locale: "en"},
		{name: "bad locale", code: "USD", locale: "not a locale!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.code, "", tt.locale); err == nil {
				t.Errorf("New(%q, %q) should fail", tt.code, tt.locale)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	f, err := New("INR", "Rs", "en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{in: "33.33", want: "Rs 33.33"},
		{in: "15", want: "Rs 15.00"},
		{in: "20.555", want: "Rs 20.56"},
		{in: "0", want: "Rs 0.00"},
		{in: "1234.5", want: "Rs 1,234.50"},
		{in: "-1234.5", want: "Rs -1,234.50"},
		{in: "100", want: "Rs 100.00"},
		{in: "12345678901234567.89", want: "Rs 12,345,678,901,234,567.89"},
		{in: "999999999999999999999.995", want: "Rs 1,000,000,000,000,000,000,000.00"},
	}
	for _, tt := range tests {
		if got := f.Amount(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("Amount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNumber_Locale(t *testing.T) {
	f, err := New("EUR", "", "de")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := f.Number(decimal.RequireFromString("12345678901234567.5")); got != "12.345.678.901.234.567,50" {
		t.Errorf("Number = %q", got)
	}
}

func TestASCIIAmount(t *testing.T) {
	f, err := New("inr", "", "en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := f.ASCIIAmount(decimal.RequireFromString("45")); got != "INR 45.00" {
		t.Errorf("ASCIIAmount = %q, want %q", got, "INR 45.00")
	}
	if f.Symbol() == "" {
		t.Error("default symbol should not be empty")
	}
}
