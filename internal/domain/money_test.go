package domain

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"9.99", 999},
		{"0", 0},
		{"0.00", 0},
		{"1.50", 150},
		{"0.50", 50},
		{"20.98", 2098},
		{"2.005", 201},   // half rounds away from zero
		{"-2.005", -201}, // also on the negative side
		{"  7.25 ", 725},
		{"3", 300},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if err != nil {
				t.Fatalf("ParseAmount(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		for _, in := range []string{"", "abc", "9.99 EUR"} {
			if _, err := ParseAmount(in); err == nil {
				t.Errorf("ParseAmount(%q) expected error, got nil", in)
			}
		}
	})
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{999, "9.99"},
		{0, "0.00"},
		{50, "0.50"},
		{2098, "20.98"},
		{100, "1.00"},
		{-150, "-1.50"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
