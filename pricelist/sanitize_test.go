package pricelist

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input Cell
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "브라질",
			want:  "브라질",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  원두  ",
			want:  "원두",
		},
		{
			name:  "tabs and carriage returns become spaces",
			input: "스페셜티\t원두\r블렌드",
			want:  "스페셜티 원두 블렌드",
		},
		{
			name:  "whitespace runs collapse",
			input: "과테말라   안티구아",
			want:  "과테말라 안티구아",
		},
		{
			name:  "non-breaking spaces become plain spaces",
			input: "케냐 AA TOP",
			want:  "케냐 AA TOP",
		},
		{
			name:  "zero-width characters and BOM stripped",
			input: "\uFEFF콜롬비아​수프리모‌‍",
			want:  "콜롬비아수프리모",
		},
		{
			name:  "decomposed hangul composes to NFC",
			input: "브라질",
			want:  "브라질",
		},
		{
			name:  "nil cell",
			input: nil,
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \t\r ",
			want:  "",
		},
		{
			name:  "integral float prints without decimal point",
			input: float64(12000),
			want:  "12000",
		},
		{
			name:  "fractional float",
			input: 1.5,
			want:  "1.5",
		},
		{
			name:  "int cell",
			input: 42,
			want:  "42",
		},
		{
			name:  "bool cell",
			input: true,
			want:  "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"  브 라 질  ",
		"케냐 AA",
		"\uFEFF디카페인​",
		"과테말라   안티구아\t워시드",
		"",
	}
	for _, input := range inputs {
		once := SanitizeText(input)
		if twice := SanitizeText(once); twice != once {
			t.Errorf("SanitizeText not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
