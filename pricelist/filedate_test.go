package pricelist

import "testing"

func TestFileDateLabel(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{
			name:     "year-month in file name",
			fileName: "단가표_202508.xlsx",
			want:     "2025년 8월 단가표",
		},
		{
			name:     "single digit month loses leading zero",
			fileName: "202501_원두.xlsx",
			want:     "2025년 1월 단가표",
		},
		{
			name:     "december",
			fileName: "원두단가 202512.xlsx",
			want:     "2025년 12월 단가표",
		},
		{
			name:     "full date still yields year-month",
			fileName: "단가표_20250815.xlsx",
			want:     "2025년 8월 단가표",
		},
		{
			name:     "no date falls back to raw name",
			fileName: "최신단가표.xlsx",
			want:     "최신단가표.xlsx",
		},
		{
			name:     "invalid month is not a date",
			fileName: "단가표_202513.xlsx",
			want:     "단가표_202513.xlsx",
		},
		{
			name:     "empty file name",
			fileName: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileDateLabel(tt.fileName); got != tt.want {
				t.Errorf("FileDateLabel(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}
