package services

import (
	"context"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// OrderGateway : création d'une commande auprès de la passerelle de
// paiement. Le montant arrive en unités majeures (euros), la passerelle
// attend des centimes.
type OrderGateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*stripe.PaymentIntent, error)
}

type StripeGateway struct{}

func (StripeGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)), // en centimes
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("receipt", receipt)

	return paymentintent.New(params)
}
