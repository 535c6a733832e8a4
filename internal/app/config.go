package app

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"go.lepovirta.org/shopkit/internal/coupon"
	"go.lepovirta.org/shopkit/internal/duration"
	"go.lepovirta.org/shopkit/internal/envsubst"
	"go.lepovirta.org/shopkit/internal/envvar"
	"go.lepovirta.org/shopkit/internal/shop"
	"go.lepovirta.org/shopkit/internal/validate"
)

// Config carries the store rules that can be overridden from a
// configuration file: the coupon catalog, the driving age table, and
// the opening hours.
type Config struct {
	// Coupons is the coupon catalog used for discount calculation.
	Coupons coupon.Catalog `json:"coupons"`

	// DrivingAges maps country codes to minimum legal driving ages.
	DrivingAges validate.DrivingAges `json:"drivingAges"`

	// Opening sets the store's opening hours as offsets from
	// midnight, e.g. {"open": "8h", "close": "20h"}.
	Opening Opening `json:"opening"`
}

type Opening struct {
	Open  duration.D `json:"open"`
	Close duration.D `json:"close"`
}

func (this *Config) Defaults() {
	this.Coupons = coupon.Default()
	this.DrivingAges = validate.DefaultDrivingAges()
	openingHours := shop.DefaultOpeningHours()
	this.Opening = Opening{
		Open:  duration.New(openingHours.Open),
		Close: duration.New(openingHours.Close),
	}
}

func (this *Config) OpeningHours() shop.OpeningHours {
	return shop.OpeningHours{
		Open:  this.Opening.Open.Duration,
		Close: this.Opening.Close.Duration,
	}
}

// Parse reads a JSON config, substitutes ${VAR} placeholders from
// the environment, and fills unset sections with defaults.
func (this *Config) Parse(
	envVars envvar.Vars,
	config io.Reader,
) error {
	this.Defaults()

	raw, err := io.ReadAll(config)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	text, err := envsubst.Replace(string(raw), envVars.ToMap())
	if err != nil {
		log.Warn().Err(err).Msg("environment variable substitution failed")
	}

	var temp Config
	if err := json.Unmarshal([]byte(text), &temp); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if len(temp.Coupons) > 0 {
		this.Coupons = temp.Coupons
	}
	if len(temp.DrivingAges) > 0 {
		this.DrivingAges = temp.DrivingAges
	}
	if temp.Opening != (Opening{}) {
		this.Opening = temp.Opening
	}

	var faults validate.Faults
	this.validate(&faults)
	return faults.ToError()
}

func (this *Config) validate(faults *validate.Faults) {
	for i, c := range this.Coupons {
		faults.FailWhen(
			c.Code == "",
			fmt.Sprintf("coupons[%d].code", i),
			"must not be empty",
		)
		faults.FailWhen(
			c.Discount <= 0 || c.Discount >= 1,
			fmt.Sprintf("coupons[%d].discount", i),
			"must be strictly between 0 and 1",
		)
	}

	for country, age := range this.DrivingAges {
		faults.FailWhen(
			country == "",
			"drivingAges",
			"country code must not be empty",
		)
		faults.FailWhen(
			age <= 0,
			fmt.Sprintf("drivingAges.%s", country),
			"minimum age must be positive",
		)
	}

	faults.FailWhen(
		this.Opening.Open.Duration < 0 ||
			this.Opening.Close.Duration > 24*time.Hour ||
			this.Opening.Open.Duration >= this.Opening.Close.Duration,
		"opening",
		"open must be before close and within a day",
	)
}
