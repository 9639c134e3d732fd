package sanitizer

import (
	"reflect"
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"only whitespace", "   \t\n  ", ""},
		{"leading and trailing", "  Cozy Loft  ", "Cozy Loft"},
		{"inner whitespace collapsed", "Sea   view \t apartment", "Sea view apartment"},
		{"already clean", "Villa Aurora", "Villa Aurora"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimAndNormalize_Idempotent(t *testing.T) {
	inputs := []string{"  a  b ", "x", "", " Penthouse   with view "}
	for _, in := range inputs {
		once := TrimAndNormalize(in)
		twice := TrimAndNormalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeAmenities(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil", nil, []string{}},
		{"dedupes case variants", []string{"WiFi", "wifi", " Wifi "}, []string{"wifi"}},
		{"drops empties", []string{"", "  ", "pool"}, []string{"pool"}},
		{
			"preserves order of first occurrence",
			[]string{"Pool", "Air Conditioning", "pool", "Kitchen"},
			[]string{"pool", "air conditioning", "kitchen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAmenities(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NormalizeAmenities(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"http://Example.COM/images/1.jpg", "https://example.com/images/1.jpg"},
		{"example.com", "https://example.com"},
		{"https://cdn.example.com/a/b/", "https://cdn.example.com/a/b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeURL(tt.input); got != tt.expected {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"e164 passthrough", "+14155552671", "+14155552671"},
		{"us national", "(415) 555-2671", "+14155552671"},
		{"garbage", "not-a-phone", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-1, 0},
		{0, 0},
		{4.3, 4.3},
		{5, 5},
		{9.7, 5},
	}

	for _, tt := range tests {
		if got := ClampRating(tt.input); got != tt.expected {
			t.Errorf("ClampRating(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
