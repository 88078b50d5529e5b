package model

import "testing"

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusConfirmed, StatusCancelled, true},
		{StatusWaiting, StatusCancelled, true},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusConfirmed, StatusWaiting, false},
		{BookingStatus("lost"), StatusCancelled, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s → %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestBookingStatusCounts(t *testing.T) {
	if !StatusConfirmed.Counts() {
		t.Fatal("confirmed must occupy a seat")
	}
	if StatusCancelled.Counts() || StatusWaiting.Counts() {
		t.Fatal("only confirmed bookings occupy seats")
	}
	if BookingStatus("other").Valid() {
		t.Fatal("unknown status reported valid")
	}
}

func TestSeatHoldingMatchesCounts(t *testing.T) {
	held := SeatHolding()
	if len(held) != 1 || held[0] != StatusConfirmed {
		t.Fatalf("SeatHolding() = %v, want [confirmed]", held)
	}
	for _, s := range held {
		if !s.Counts() {
			t.Errorf("%s is seat holding but Counts() = false", s)
		}
	}

	held[0] = StatusWaiting
	if SeatHolding()[0] != StatusConfirmed {
		t.Fatal("callers must not be able to modify the seat-holding set")
	}
}
