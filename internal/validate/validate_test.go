package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInput(t *testing.T) {
	t.Run("accepts valid input", func(t *testing.T) {
		assert := assert.New(t)

		msg, err := UserInput("johndoe", 30)
		assert.NoError(err)
		assert.Equal(SuccessMessage, msg)
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		assert := assert.New(t)

		for _, tc := range []struct {
			username string
			age      int
		}{
			{"abc", 18},
			{strings.Repeat("a", 255), 100},
		} {
			msg, err := UserInput(tc.username, tc.age)
			assert.NoError(err)
			assert.Equal(SuccessMessage, msg)
		}
	})

	t.Run("rejects short and long usernames", func(t *testing.T) {
		assert := assert.New(t)

		for _, username := range []string{"", "ab", strings.Repeat("a", 256)} {
			_, err := UserInput(username, 30)
			assert.ErrorContains(err, "invalid username")
			assert.NotContains(err.Error(), "invalid age")
		}
	})

	t.Run("rejects out of range ages", func(t *testing.T) {
		assert := assert.New(t)

		for _, age := range []int{0, 17, 101, -5} {
			_, err := UserInput("johndoe", age)
			assert.ErrorContains(err, "invalid age")
			assert.NotContains(err.Error(), "invalid username")
		}
	})

	t.Run("combines failures into one message", func(t *testing.T) {
		assert := assert.New(t)

		_, err := UserInput("", 0)
		assert.ErrorContains(err, "invalid username")
		assert.ErrorContains(err, "invalid age")
	})
}

func TestPriceInRange(t *testing.T) {
	assert := assert.New(t)

	assert.True(PriceInRange(50.0, 0, 100))
	assert.True(PriceInRange(0.0, 0, 100))
	assert.True(PriceInRange(100.0, 0, 100))
	assert.False(PriceInRange(-10.0, 0, 100))
	assert.False(PriceInRange(200.0, 0, 100))

	// works for any ordered type
	assert.True(PriceInRange(5, 1, 10))
	assert.False(PriceInRange("a", "b", "d"))
}

func TestUsername(t *testing.T) {
	assert := assert.New(t)

	assert.True(Username("johnd"))
	assert.True(Username("johndoe1234567x"))
	assert.False(Username(""))
	assert.False(Username("john"))
	assert.False(Username("johndoe123456789"))
}

func TestCanDrive(t *testing.T) {
	t.Run("rejects unknown country codes", func(t *testing.T) {
		assert := assert.New(t)

		_, err := CanDrive(20, "FI")
		assert.ErrorIs(err, ErrUnknownCountry)
		assert.ErrorContains(err, "invalid country code")
	})

	t.Run("age at and above the minimum is eligible", func(t *testing.T) {
		assert := assert.New(t)
		require := require.New(t)

		for _, tc := range []struct {
			age      int
			country  string
			eligible bool
		}{
			{15, "US", false},
			{16, "US", true},
			{17, "US", true},
			{16, "UK", false},
			{17, "UK", true},
			{18, "UK", true},
		} {
			ok, err := CanDrive(tc.age, tc.country)
			require.NoError(err)
			assert.Equal(tc.eligible, ok, "age %d in %s", tc.age, tc.country)
		}
	})

	t.Run("custom table overrides the default", func(t *testing.T) {
		assert := assert.New(t)
		require := require.New(t)

		ages := DrivingAges{"SE": 18}
		ok, err := ages.CanDrive(18, "SE")
		require.NoError(err)
		assert.True(ok)

		_, err = ages.CanDrive(18, "US")
		assert.ErrorIs(err, ErrUnknownCountry)
	})
}
