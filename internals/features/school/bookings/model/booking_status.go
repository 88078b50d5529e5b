package model

// BookingStatus is a finite-state field. Nothing ever moves back to confirmed.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusWaiting   BookingStatus = "waiting"
)

var transitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed: {StatusCancelled},
	StatusWaiting:   {StatusCancelled},
	StatusCancelled: nil,
}

func (s BookingStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

var seatHolding = []BookingStatus{StatusConfirmed}

// SeatHolding lists the statuses that occupy a seat; capacity queries filter on it.
func SeatHolding() []BookingStatus {
	return append([]BookingStatus(nil), seatHolding...)
}

// Counts reports whether the booking occupies a seat.
func (s BookingStatus) Counts() bool {
	for _, h := range seatHolding {
		if s == h {
			return true
		}
	}
	return false
}
