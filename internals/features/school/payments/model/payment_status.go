package model

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentCompleted, PaymentFailed},
	PaymentCompleted: {PaymentRefunded},
	PaymentFailed:    nil,
	PaymentRefunded:  nil,
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, t := range paymentTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
