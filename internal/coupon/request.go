package coupon

import (
	"encoding/json"
	"fmt"
)

// DiscountRequest is a discount calculation request as it arrives
// from an untyped source such as a JSON document. Unmarshalling
// checks the dynamic types of the fields so that type errors are
// reported as invalid input instead of generic decoding errors.
type DiscountRequest struct {
	Price float64
	Code  string
}

func (this *DiscountRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Price any `json:"price"`
		Code  any `json:"code"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch price := raw.Price.(type) {
	case float64:
		this.Price = price
	default:
		return fmt.Errorf("%w: expected a number, got %T", ErrInvalidPrice, raw.Price)
	}

	switch code := raw.Code.(type) {
	case string:
		this.Code = code
	default:
		return fmt.Errorf("%w: expected a string, got %T", ErrInvalidCode, raw.Code)
	}

	return nil
}
