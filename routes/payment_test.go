package routes

import "testing"

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{49.99, 4999},
		{0.01, 1},
		{1, 100},
		{100, 10000},
		{19.995, 2000}, // rounds half away from zero
		{0.1 + 0.2, 30}, // float noise must not shift the cents
	}

	for _, tc := range cases {
		if got := ToMinorUnits(tc.amount); got != tc.want {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
