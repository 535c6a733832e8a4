package validate

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

var ErrUnknownCountry = errors.New("invalid country code")

// SuccessMessage is returned by UserInput when all checks pass.
const SuccessMessage = "Validation successful"

const (
	minUsernameLen = 3
	maxUsernameLen = 255
	minAge         = 18
	maxAge         = 100
)

// UserInput validates a sign-up form submission. Username and age are
// checked independently and all failures are combined into a single
// error message.
func UserInput(username string, age int) (string, error) {
	var faults Faults

	usernameLen := utf8.RuneCountInString(username)
	faults.FailWhen(
		usernameLen < minUsernameLen || usernameLen > maxUsernameLen,
		"invalid username",
		"must be 3 to 255 characters long",
	)
	faults.FailWhen(
		age < minAge || age > maxAge,
		"invalid age",
		"must be between 18 and 100",
	)

	if err := faults.ToError(); err != nil {
		return "", err
	}
	return SuccessMessage, nil
}

// PriceInRange reports whether the price is within the given bounds.
// Both bounds are inclusive.
func PriceInRange[T constraints.Ordered](price, min, max T) bool {
	return min <= price && price <= max
}

// Username reports whether a display name is acceptable: 5 to 15
// characters. This rule is intentionally stricter than the one in
// UserInput, which covers account names.
func Username(username string) bool {
	length := utf8.RuneCountInString(username)
	return length >= 5 && length <= 15
}

// DrivingAges maps a country code to the minimum legal driving age
// in that country.
type DrivingAges map[string]int

func DefaultDrivingAges() DrivingAges {
	return DrivingAges{
		"US": 16,
		"UK": 17,
	}
}

// CanDrive reports whether a person of the given age may drive in the
// given country. The minimum age itself is eligible.
func (this DrivingAges) CanDrive(age int, countryCode string) (bool, error) {
	minimum, ok := this[countryCode]
	if !ok {
		return false, ErrUnknownCountry
	}
	return age >= minimum, nil
}

// CanDrive checks the age against the default driving age table.
func CanDrive(age int, countryCode string) (bool, error) {
	return DefaultDrivingAges().CanDrive(age, countryCode)
}
