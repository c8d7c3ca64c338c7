package domain

import "time"

// PaymentStatus tracks the lifecycle of a client payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records a payment from a client to a trainer.
type Payment struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	TrainerID   string        `json:"trainer_id"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      PaymentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
