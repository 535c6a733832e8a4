// Package shop contains the store front operations that depend on
// external collaborators. Every collaborator is an injected
// interface so that tests can substitute doubles without touching
// global state.
package shop

import (
	"context"
	"errors"
	"time"
)

var ErrShippingUnavailable = errors.New("shipping unavailable")

// ExchangeRates looks up currency exchange rates.
type ExchangeRates interface {
	Rate(ctx context.Context, fromCurrency string) (float64, error)
}

// ShippingQuotes looks up shipping quotes per destination.
// A nil quote means shipping to the destination is not available.
type ShippingQuotes interface {
	Quote(ctx context.Context, destination string) (*ShippingQuote, error)
}

// Analytics records page view events.
type Analytics interface {
	TrackPageView(ctx context.Context, path string) error
}

// PaymentGateway charges a credit card.
type PaymentGateway interface {
	Charge(ctx context.Context, card CreditCard, amount float64) (ChargeResult, error)
}

// EmailSender delivers an email to a recipient.
type EmailSender interface {
	Send(ctx context.Context, recipient, subject string) error
}

// CodeSource produces one-time security codes.
type CodeSource interface {
	SecurityCode() string
}

// Clock tells the current time. Injected so that time-dependent
// rules can be tested with a fixed clock.
type Clock interface {
	Now() time.Time
}

type ShippingQuote struct {
	Cost          float64 `json:"cost"`
	EstimatedDays int     `json:"estimatedDays"`
}

type CreditCard struct {
	Number string `json:"number"`
}

type Order struct {
	TotalAmount float64 `json:"totalAmount"`
}

type ChargeStatus string

const (
	ChargeSuccess ChargeStatus = "success"
	ChargeFailed  ChargeStatus = "failed"
)

type ChargeResult struct {
	Status ChargeStatus `json:"status"`
}

// OrderResult is the structured outcome of an order submission.
// A failed charge is reported here instead of as an error.
type OrderResult struct {
	Success        bool   `json:"success"`
	ConfirmationID string `json:"confirmationId,omitempty"`
	Error          string `json:"error,omitempty"`
}

// OpeningHours bounds the store's online availability as offsets
// from midnight. The opening time is inclusive, the closing time
// exclusive.
type OpeningHours struct {
	Open  time.Duration `json:"open"`
	Close time.Duration `json:"close"`
}

func DefaultOpeningHours() OpeningHours {
	return OpeningHours{
		Open:  8 * time.Hour,
		Close: 20 * time.Hour,
	}
}
