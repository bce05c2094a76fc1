package finreport

import (
	"testing"
)

func TestDetectPeriods(t *testing.T) {
	type period struct {
		Column int
		Label  string
	}
	testCases := []struct {
		name    string
		headers []string
		want    []period
	}{
		{
			name:    "formats",
			headers: []string{"Наименование показателя", "31.12.2023", "2022-12-31", "на 31/12/2021"},
			want:    []period{{3, "31.12.2021"}, {2, "31.12.2022"}, {1, "31.12.2023"}},
		},
		{
			name:    "invalid date falls back to the next format",
			headers: []string{"31.02.2023 2023-03-31"},
			want:    []period{{0, "31.03.2023"}},
		},
		{
			name:    "year phrase",
			headers: []string{"Показатель", "За 2023 год"},
			want:    []period{{1, "31.12.2023"}},
		},
		{
			name:    "absolute date wins over year phrase",
			headers: []string{"на 30.06.2023 за 2022"},
			want:    []period{{0, "30.06.2023"}},
		},
		{
			name:    "unknown year",
			headers: []string{"за 2017", "Примечание"},
			want:    nil,
		},
		{
			name:    "same date twice",
			headers: []string{"31.12.2023", "Итого 31.12.2023"},
			want:    []period{{0, "31.12.2023"}, {1, "31.12.2023"}},
		},
		{
			name:    "stable by year",
			headers: []string{"за 2023", "31.03.2023", "31.12.2022"},
			want:    []period{{2, "31.12.2022"}, {0, "31.12.2023"}, {1, "31.03.2023"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectPeriods(tc.headers)
			if len(got) != len(tc.want) {
				t.Fatalf("DetectPeriods(%q) = %v, want %v", tc.headers, got, tc.want)
			}
			for i, p := range got {
				if w := tc.want[i]; p.Column != w.Column || p.Label != w.Label {
					t.Errorf("period #%d = {%d %s}, want {%d %s}", i, p.Column, p.Label, w.Column, w.Label)
				}
				if p.Header != tc.headers[p.Column] {
					t.Errorf("period #%d header = %q, want %q", i, p.Header, tc.headers[p.Column])
				}
			}
		})
	}
}

func TestPeriod_Year(t *testing.T) {
	p := DetectPeriods([]string{"2023-06-30"})[0]
	if p.Year != 2023 || p.Date.String() != "2023-06-30" {
		t.Errorf("period = %+v, want year 2023 on 2023-06-30", p)
	}
}
