package service

import "testing"

func TestAvailableSlots(t *testing.T) {
	tests := []struct {
		max       int
		confirmed int64
		want      int
	}{
		{10, 0, 10},
		{10, 3, 7},
		{10, 10, 0},
		{5, 7, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := AvailableSlots(tt.max, tt.confirmed); got != tt.want {
			t.Errorf("AvailableSlots(%d, %d) = %d, want %d", tt.max, tt.confirmed, got, tt.want)
		}
	}
}
