package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8", "$8.00"},
		{"9.99", "$9.99"},
		{"0", "$0.00"},
		{"3.125", "$3.13"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Format(MustParse(tt.in)); got != tt.want {
				t.Errorf("Format(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("$12.50")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !d.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Parse = %s, want 12.5", d)
	}

	if _, err := Parse("twelve"); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestPercentOff(t *testing.T) {
	got := PercentOff(MustParse("10.00"), decimal.NewFromInt(20))
	if !got.Equal(MustParse("8.00")) {
		t.Errorf("PercentOff(10, 20) = %s, want 8.00", got)
	}

	got = PercentOff(MustParse("4.99"), decimal.NewFromInt(15))
	if !got.Equal(MustParse("4.24")) {
		t.Errorf("PercentOff(4.99, 15) = %s, want 4.24", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(MustParse("-3")); !got.IsZero() {
		t.Errorf("Clamp(-3) = %s, want 0", got)
	}
	if got := Clamp(MustParse("3")); !got.Equal(MustParse("3")) {
		t.Errorf("Clamp(3) = %s, want 3", got)
	}
}
