// internal/services/payment_service.go
package services

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/models"
)

// PaymentIntent is the gateway-side handle for collecting a sample order payment.
type PaymentIntent struct {
	ID           string `json:"payment_id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, order *models.SampleOrder) (*PaymentIntent, error)
}

// StripeGateway creates card PaymentIntents for sample orders.
type StripeGateway struct {
	config *config.Config
}

// NewPaymentGateway returns nil when no Stripe key is configured; orders then
// stay pending for manual invoicing.
func NewPaymentGateway(config *config.Config) PaymentGateway {
	if config.Payment.StripeSecretKey == "" {
		return nil
	}

	// Initialize Stripe
	stripe.Key = config.Payment.StripeSecretKey

	return &StripeGateway{config: config}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, order *models.SampleOrder) (*PaymentIntent, error) {
	// Convert amount to cents for Stripe
	amountInCents := toMinorUnits(order.Total)

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountInCents),
		Currency:    stripe.String(order.Currency),
		Description: stripe.String("Sample order " + order.OrderNumber),
	}
	params.Context = ctx
	params.SetIdempotencyKey("sample-order-" + order.ID)
	params.AddMetadata("order_id", order.ID)
	params.AddMetadata("order_number", order.OrderNumber)
	params.AddMetadata("email", order.Email)
	if order.Email != "" {
		params.ReceiptEmail = stripe.String(order.Email)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
