package inspection

import "testing"

func TestNormalizeScoreIsTotal(t *testing.T) {
	t.Parallel()

	valid := map[string]bool{"": true, "N/A": true}
	for i := 1; i <= 9; i++ {
		valid[string(rune('0'+i))] = true
	}

	inputs := []any{
		nil, "", "   ", "n/a", "N/A", "Na", "abc", "NaN", "Inf", "-Inf",
		"0", "1", "5", "9", "15", "-3", "4.4", "4.6", "1e9", true, false,
		float64(0), float64(7.2), float64(100), 3, []string{"x"},
	}
	for _, input := range inputs {
		got := NormalizeScore(input)
		if !valid[got] {
			t.Fatalf("NormalizeScore(%v) = %q, outside score set", input, got)
		}
	}
}

func TestNormalizeScoreCases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input any
		want  string
	}{
		{nil, ""},
		{"", ""},
		{"   ", ""},
		{"n/a", "N/A"},
		{"N/a", "N/A"},
		{"15", "9"},
		{"0", "1"},
		{"-4", "1"},
		{"abc", ""},
		{"4.4", "4"},
		{"4.6", "5"},
		{"9", "9"},
		{float64(7), "7"},
		{float64(12), "9"},
		{3, "3"},
		{true, ""},
	}
	for _, tc := range cases {
		if got := NormalizeScore(tc.input); got != tc.want {
			t.Fatalf("NormalizeScore(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSeverityInvertsScore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score string
		want  int
	}{
		{"9", 1},
		{"1", 9},
		{"5", 5},
		{"", 0},
		{"N/A", 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		if got := Severity(tc.score); got != tc.want {
			t.Fatalf("Severity(%q) = %d, want %d", tc.score, got, tc.want)
		}
	}
}
