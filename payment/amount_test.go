package payment

import "testing"

func TestAmountInMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{price: 0, want: 0},
		{price: 1, want: 100},
		{price: 19.99, want: 1999},
		{price: 0.29, want: 29},
		{price: 1.005, want: 100},
		{price: 10.555, want: 1055},
		{price: 49.9999, want: 4999},
		{price: 120.5, want: 12050},
	}

	for _, tt := range tests {
		if got := AmountInMinorUnits(tt.price); got != tt.want {
			t.Errorf("AmountInMinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}
