package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDataAlwaysFails(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	data, err := FetchData(context.Background())
	assert.Nil(data)
	require.Error(err)

	var fetchErr *FetchError
	require.ErrorAs(err, &fetchErr)
	assert.Regexp("(?i)fail", fetchErr.Reason)
}

func TestFetchDataCancelledContext(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FetchData(ctx)
	assert.ErrorIs(err, context.Canceled)
}
