package common

import (
	"testing"
)

func TestMatchesSubject(t *testing.T) {
	tests := []struct {
		candidate string
		subject   string
		expected  bool
	}{
		{"Christian McCaffrey", "McCaffrey", true},
		{"Christian McCaffrey", "mccaffrey", true},
		{"San Francisco 49ers", "49ers", true},
		{"Seattle Seahawks", "49ers", false},
		{"Christian McCaffrey", "", false},
	}

	for _, tc := range tests {
		if got := MatchesSubject(tc.candidate, tc.subject); got != tc.expected {
			t.Errorf("MatchesSubject(%q, %q) = %v, expected %v", tc.candidate, tc.subject, got, tc.expected)
		}
	}
}

func TestParseStatValue(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		ok       bool
	}{
		{"85", 85, true},
		{"6.2", 6.2, true},
		{"1,024", 1024, true},
		{" 12 ", 12, true},
		{"-3", -3, true},
		{"", 0, false},
		{"--", 0, false},
		{"DNP", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseStatValue(tc.raw)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseStatValue(%q) = %v, %v, expected %v, %v", tc.raw, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestSplitPair(t *testing.T) {
	tests := []struct {
		raw  string
		sep  string
		num  float64
		den  float64
		ok   bool
	}{
		{"21/25", "/", 21, 25, true},
		{"7-13", "-", 7, 13, true},
		{"2/3", "/", 2, 3, true},
		{"85", "/", 0, 0, false},
		{"a/b", "/", 0, 0, false},
		{"1/2/3", "/", 0, 0, false},
	}

	for _, tc := range tests {
		num, den, ok := SplitPair(tc.raw, tc.sep)
		if num != tc.num || den != tc.den || ok != tc.ok {
			t.Errorf("SplitPair(%q, %q) = %v, %v, %v", tc.raw, tc.sep, num, den, ok)
		}
	}
}

func TestFormatOdds(t *testing.T) {
	tests := []struct {
		odds     float64
		expected string
	}{
		{-110, "-110"},
		{150, "+150"},
		{100.5, "+100.5"},
		{0, "0"},
	}

	for _, tc := range tests {
		if got := FormatOdds(tc.odds); got != tc.expected {
			t.Errorf("FormatOdds(%v) = %q, expected %q", tc.odds, got, tc.expected)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{46, "46"},
		{6.2, "6.2"},
		{0, "0"},
		{45.5, "45.5"},
	}

	for _, tc := range tests {
		if got := FormatValue(tc.value); got != tc.expected {
			t.Errorf("FormatValue(%v) = %q, expected %q", tc.value, got, tc.expected)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{4, "+4"},
		{-3, "-3"},
		{0, "0"},
		{2.5, "+2.5"},
	}

	for _, tc := range tests {
		if got := FormatSigned(tc.value); got != tc.expected {
			t.Errorf("FormatSigned(%v) = %q, expected %q", tc.value, got, tc.expected)
		}
	}
}

func TestCalculatePayout(t *testing.T) {
	tests := []struct {
		stake    float64
		odds     float64
		expected float64
	}{
		{100, 150, 250},
		{100, -100, 200},
		{50, 100, 100},
		{50, 0, 50},
	}

	for _, tc := range tests {
		if got := CalculatePayout(tc.stake, tc.odds); got != tc.expected {
			t.Errorf("CalculatePayout(%v, %v) = %v, expected %v", tc.stake, tc.odds, got, tc.expected)
		}
	}
}

func TestContains(t *testing.T) {
	types := []string{"Prop", "Spread", "Total"}
	if !Contains(types, "Spread") {
		t.Error("expected Spread to be found")
	}
	if Contains(types, "Parlay") {
		t.Error("did not expect Parlay to be found")
	}
}
