package finreport

import "testing"

func TestAmount(t *testing.T) {
	testCases := []struct {
		v      float64
		str    string
		signed string
	}{
		{1000000, "1 000 000 руб.", "+1 000 000 руб."},
		{-20000, "-20 000 руб.", "-20 000 руб."},
		{200000.4, "200 000 руб.", "+200 000 руб."},
		{999.5, "1 000 руб.", "+1 000 руб."},
		{0, "0 руб.", "0 руб."},
		{0.2, "0 руб.", "0 руб."},
	}
	for _, tc := range testCases {
		a := A(tc.v)
		if got := a.String(); got != tc.str {
			t.Errorf("A(%v).String() = %q, want %q", tc.v, got, tc.str)
		}
		if got := a.SignedString(); got != tc.signed {
			t.Errorf("A(%v).SignedString() = %q, want %q", tc.v, got, tc.signed)
		}
	}
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		p      Percent
		str    string
		signed string
	}{
		{25, "25.0%", "+25.0%"},
		{-20, "-20.0%", "-20.0%"},
		{0, "0.0%", "+0.0%"},
		{12.345, "12.3%", "+12.3%"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.str {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.str)
		}
		if got := tc.p.SignedString(); got != tc.signed {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.p), got, tc.signed)
		}
	}
	if !Percent(1.00001).Equal(1) || Percent(1.001).Equal(1) {
		t.Errorf("Percent.Equal() does not compare with a 0.0001 precision")
	}
}
