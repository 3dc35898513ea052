// Package payment provides the Stripe-backed implementation of the domain's
// payment service.
package payment

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"ideaforge/config"
	"ideaforge/internal/domain/service"
)

// stripePaymentService implements service.PaymentService against the Stripe API.
type stripePaymentService struct {
	api *client.API
}

// NewStripePaymentService is the constructor for stripePaymentService.
func NewStripePaymentService(cfg *config.Config) (service.PaymentService, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripePaymentService{
		api: api,
	}, nil
}

// CreatePaymentIntent creates a payment intent at Stripe and returns its ID
// together with the client secret the frontend needs to confirm the payment.
func (s *stripePaymentService) CreatePaymentIntent(ctx context.Context, input *service.CreatePaymentIntentInput) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(input.AmountCents),
		Currency:    stripe.String(input.Currency),
		Description: stripe.String(input.Description),
	}
	params.Context = ctx
	for key, value := range input.Metadata {
		params.AddMetadata(key, value)
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stripe payment intent")
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
