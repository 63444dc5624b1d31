package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{-600, "-$600.00"},
		{1234567.891, "$1,234,567.89"},
		{0.005, "$0.01"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(16.666); got != "16.7%" {
		t.Errorf("FormatPercent = %q, want 16.7%%", got)
	}
}

func TestFormatGrowth(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{30, "+30.0%"},
		{0, "+0.0%"},
		{-12.5, "-12.5%"},
	}
	for _, c := range cases {
		if got := FormatGrowth(c.in); got != c.want {
			t.Errorf("FormatGrowth(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(150, 100); got != "+$50.00" {
		t.Errorf("FormatDelta = %q, want +$50.00", got)
	}
	if got := FormatDelta(100, 150); got != "-$50.00" {
		t.Errorf("FormatDelta = %q, want -$50.00", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth("2025-03"); got != "Mar 2025" {
		t.Errorf("FormatMonth = %q, want Mar 2025", got)
	}
	if got := FormatMonth("not-a-month"); got != "not-a-month" {
		t.Errorf("bad key should come back unchanged, got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(0); got != "Sun" {
		t.Errorf("FormatDayOfWeek(0) = %q, want Sun", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Errorf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}
