package coupon

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrice = errors.New("invalid price")
	ErrInvalidCode  = errors.New("invalid code")
)

// Coupon pairs a discount code with a discount fraction.
// The fraction is expected to be strictly between 0 and 1.
type Coupon struct {
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
}

type Catalog []Coupon

// Default returns the built-in coupon catalog.
func Default() Catalog {
	return Catalog{
		{Code: "SAVE10", Discount: 0.1},
		{Code: "SAVE20", Discount: 0.2},
		{Code: "WELCOME50", Discount: 0.5},
	}
}

// Lookup finds a coupon by its code. Codes are matched
// case-sensitively.
func (this Catalog) Lookup(code string) (Coupon, bool) {
	for _, c := range this {
		if c.Code == code {
			return c, true
		}
	}
	return Coupon{}, false
}

// Apply computes the price after applying the discount of the given
// code. An unknown code leaves the price unchanged. Prices must be
// finite and non-negative.
func (this Catalog) Apply(price float64, code string) (float64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, ErrInvalidPrice
	}
	c, ok := this.Lookup(code)
	if !ok {
		return price, nil
	}
	return price * (1 - c.Discount), nil
}

// CalculateDiscount applies a code from the default catalog.
func CalculateDiscount(price float64, code string) (float64, error) {
	return Default().Apply(price, code)
}
