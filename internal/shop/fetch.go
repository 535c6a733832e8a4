package shop

import "context"

// FetchError is the failure reported by FetchData.
type FetchError struct {
	Reason string
}

func (this *FetchError) Error() string {
	return this.Reason
}

// FetchData stands in for a remote data fetch that has not been
// implemented yet. It always fails. Callers still have to handle the
// success path, since a real implementation will eventually replace
// this one.
func FetchData(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return nil, &FetchError{Reason: "operation failed"}
}
