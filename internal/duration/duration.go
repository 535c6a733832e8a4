package duration

import (
	"encoding/json"
	"errors"
	"time"
)

// D is a time.Duration that marshals to and from JSON. Durations are
// accepted either as strings in Go duration format (e.g. "8h30m") or
// as plain nanosecond counts.
type D struct {
	time.Duration
}

func New(d time.Duration) D {
	return D{Duration: d}
}

func (this D) MarshalJSON() ([]byte, error) {
	return json.Marshal(this.String())
}

func (this *D) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		this.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		this.Duration, err = time.ParseDuration(value)
		return err
	default:
		return errors.New("unexpected type for duration")
	}
}
