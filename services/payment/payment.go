// Package payment creates payment intents with Stripe. Confirmation of the
// charge is reported back by the client and reconciled in the booking engine.
package payment

import (
	"context"
	"errors"
	"math"

	"medicare/models"
	"medicare/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// IntentBackend is the subset of the Stripe payment-intent client in use.
type IntentBackend interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error)
}

type StripePaymentService struct {
	Intents  IntentBackend
	Currency string
	Logger   *zap.Logger
}

// NewStripePaymentService builds a service on its own Stripe client, so the
// package-level stripe.Key is left alone.
func NewStripePaymentService(secretKey, currency string, logger *zap.Logger) *StripePaymentService {
	sc := client.New(secretKey, nil)
	return &StripePaymentService{Intents: sc.PaymentIntents, Currency: currency, Logger: logger}
}

// CreateIntent requests a card payment intent for price, expressed in major
// currency units.
func (s *StripePaymentService) CreateIntent(ctx context.Context, price float64) (*models.PaymentIntentResponse, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, utils.NewError(utils.KindBadRequest, "price must be a positive amount")
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(s.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := s.Intents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			s.Logger.Error("stripe rejected payment intent",
				zap.String("code", string(stripeErr.Code)),
				zap.String("requestId", stripeErr.RequestID),
				zap.Error(err),
			)
		}
		return nil, utils.WrapError(utils.KindPaymentProvider, "failed to create payment intent", err)
	}
	return &models.PaymentIntentResponse{ClientSecret: pi.ClientSecret}, nil
}

// MinorUnits converts an amount such as 89.99 into 8999.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
