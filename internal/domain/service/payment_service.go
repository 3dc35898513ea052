package service

import "context"

// PaymentIntent is the processor-side record backing a purchase attempt.
type PaymentIntent struct {
	ID           string // Processor-assigned intent ID, stored on the transaction row.
	ClientSecret string // Returned to the frontend to confirm the payment.
}

// CreatePaymentIntentInput describes the intent to create at the processor.
type CreatePaymentIntentInput struct {
	AmountCents int64
	Currency    string
	Description string
	Metadata    map[string]string
}

// PaymentService creates payment intents at the external payment processor.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, input *CreatePaymentIntentInput) (*PaymentIntent, error)
}
