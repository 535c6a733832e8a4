package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.lepovirta.org/shopkit/internal/match"
)

const (
	homePagePath    = "/home"
	homePageContent = "<div><b>content</b></div>"
	welcomeSubject  = "Welcome aboard!"
	paymentError    = "payment_error"
	holidayDiscount = 0.2
)

var emailMatcher = match.FromPatternOrPanic(
	`^[\w.-]+@([\w-]+\.)+[\w-]{2,}$`,
)

// Deps bundles the collaborators of a Service. Clock and Opening
// are optional: the system clock and the default opening hours are
// used when they are unset.
type Deps struct {
	Rates     ExchangeRates
	Shipping  ShippingQuotes
	Analytics Analytics
	Payments  PaymentGateway
	Email     EmailSender
	Codes     CodeSource
	Clock     Clock
	Opening   OpeningHours
}

type Service struct {
	deps Deps
}

func (this *Service) Init(deps Deps) {
	if deps.Clock == nil {
		deps.Clock = systemClock{}
	}
	if deps.Opening == (OpeningHours{}) {
		deps.Opening = DefaultOpeningHours()
	}
	this.deps = deps
}

// PriceInCurrency converts a price to the given currency using the
// current exchange rate.
func (this *Service) PriceInCurrency(
	ctx context.Context,
	price float64,
	currency string,
) (float64, error) {
	rate, err := this.deps.Rates.Rate(ctx, currency)
	if err != nil {
		return 0, fmt.Errorf("failed to get exchange rate for %s: %w", currency, err)
	}
	return price * rate, nil
}

// ShippingInfo describes the shipping cost and estimate for a
// destination. ErrShippingUnavailable is returned when the provider
// has no quote for the destination.
func (this *Service) ShippingInfo(
	ctx context.Context,
	destination string,
) (string, error) {
	quote, err := this.deps.Shipping.Quote(ctx, destination)
	if err != nil {
		return "", fmt.Errorf("failed to get shipping quote: %w", err)
	}
	if quote == nil {
		return "", ErrShippingUnavailable
	}
	return fmt.Sprintf(
		"Shipping cost: $%.2f (%d days)",
		quote.Cost, quote.EstimatedDays,
	), nil
}

// RenderPage returns the home page content after recording the
// page view.
func (this *Service) RenderPage(ctx context.Context) (string, error) {
	if err := this.deps.Analytics.TrackPageView(ctx, homePagePath); err != nil {
		return "", fmt.Errorf("failed to track page view: %w", err)
	}
	return homePageContent, nil
}

// SubmitOrder charges the order total from the given card. A failed
// charge is reported in the result rather than as an error; errors
// are reserved for the charge call itself failing.
func (this *Service) SubmitOrder(
	ctx context.Context,
	order Order,
	card CreditCard,
) (OrderResult, error) {
	charge, err := this.deps.Payments.Charge(ctx, card, order.TotalAmount)
	if err != nil {
		return OrderResult{}, fmt.Errorf("failed to charge card: %w", err)
	}
	if charge.Status == ChargeFailed {
		return OrderResult{
			Success: false,
			Error:   paymentError,
		}, nil
	}
	return OrderResult{
		Success:        true,
		ConfirmationID: uuid.NewString(),
	}, nil
}

// SignUp sends a welcome email to the given address. Addresses that
// don't look like email addresses are rejected without sending
// anything.
func (this *Service) SignUp(ctx context.Context, email string) (bool, error) {
	if !emailMatcher.MatchString(email) {
		return false, nil
	}
	if err := this.deps.Email.Send(ctx, email, welcomeSubject); err != nil {
		return false, fmt.Errorf("failed to send welcome email: %w", err)
	}
	return true, nil
}

// Login emails a fresh security code to the given address.
func (this *Service) Login(ctx context.Context, email string) error {
	code := this.deps.Codes.SecurityCode()
	if err := this.deps.Email.Send(ctx, email, code); err != nil {
		return fmt.Errorf("failed to send security code: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("email", email).Msg("security code sent")
	return nil
}

// IsOnline reports whether the store is currently open. The opening
// time is inclusive and the closing time exclusive.
func (this *Service) IsOnline() bool {
	now := this.deps.Clock.Now()
	midnight := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, now.Location(),
	)
	sinceMidnight := now.Sub(midnight)
	return sinceMidnight >= this.deps.Opening.Open &&
		sinceMidnight < this.deps.Opening.Close
}

// Discount returns the seasonal discount fraction: 0.2 on Christmas
// day, 0 otherwise.
func (this *Service) Discount() float64 {
	now := this.deps.Clock.Now()
	if now.Month() == time.December && now.Day() == 25 {
		return holidayDiscount
	}
	return 0
}
