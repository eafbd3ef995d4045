package money_test

import (
	"testing"

	"campusmart/internal/money"
)

type line struct {
	price float64
	qty   int
}

func sum(ls []line) float64 {
	return money.Sum(ls, func(l line) (float64, int) { return l.price, l.qty })
}

func TestSum(t *testing.T) {
	tests := []struct {
		name  string
		lines []line
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []line{{5, 2}}, 10},
		{"cents do not drift", []line{{0.1, 1}, {0.2, 1}}, 0.3},
		{"many", []line{{1.15, 3}, {2.5, 4}, {0.05, 7}}, 13.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sum(tt.lines); got != tt.want {
				t.Errorf("Sum() = %v, want %v", got, tt.want)
			}
		})
	}
}
