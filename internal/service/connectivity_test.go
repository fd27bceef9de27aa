package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectivity_SetOnlineReportsChange(t *testing.T) {
	c := NewConnectivity()

	assert.False(t, c.IsOnline())
	assert.True(t, c.SetOnline(true))
	assert.False(t, c.SetOnline(true))
	assert.True(t, c.IsOnline())
	assert.True(t, c.SetOnline(false))
}

func TestOnlineOnly_OfflineFailsFast(t *testing.T) {
	c := NewConnectivity()
	called := false

	_, err := onlineOnly(context.Background(), c, func(context.Context) (int, error) {
		called = true
		return 1, nil
	})

	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)
	assert.False(t, called)
}

func TestOnlineOnly_NetworkErrorGoesOfflineOnce(t *testing.T) {
	c := NewConnectivity()
	c.SetOnline(true)

	var causes []error
	c.OnConnectionLost(func(cause error) { causes = append(causes, cause) })

	netErr := errors.Join(adapter.ErrNetwork, errors.New("dial tcp: connection refused"))
	err := onlineOnlyErr(context.Background(), c, func(context.Context) error { return netErr })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.False(t, c.IsOnline())

	// already offline: fails fast and the hook stays untouched
	err = onlineOnlyErr(context.Background(), c, func(context.Context) error { return netErr })
	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)
	require.Len(t, causes, 1)
	assert.ErrorIs(t, causes[0], adapter.ErrNetwork)
}

func TestOnlineOnly_GatewayStatusesCountAsNetwork(t *testing.T) {
	for _, cause := range []error{adapter.ErrBadGateway, adapter.ErrServiceUnavailable, adapter.ErrGatewayTimeout} {
		c := NewConnectivity()
		c.SetOnline(true)

		err := onlineOnlyErr(context.Background(), c, func(context.Context) error { return cause })
		assert.ErrorIs(t, err, ErrKeriaConnectionBroken, cause.Error())
		assert.False(t, c.IsOnline(), cause.Error())
	}
}

func TestOnlineOnly_OtherErrorsPassThrough(t *testing.T) {
	c := NewConnectivity()
	c.SetOnline(true)

	err := onlineOnlyErr(context.Background(), c, func(context.Context) error { return adapter.ErrNotFound })

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.NotErrorIs(t, err, ErrKeriaConnectionBroken)
	assert.True(t, c.IsOnline())
}

func TestOnlineOnly_NestedCallsDoNotDoubleWrap(t *testing.T) {
	c := NewConnectivity()
	c.SetOnline(true)

	hooks := 0
	c.OnConnectionLost(func(error) { hooks++ })

	err := onlineOnlyErr(context.Background(), c, func(ctx context.Context) error {
		return onlineOnlyErr(ctx, c, func(context.Context) error { return adapter.ErrNetwork })
	})

	assert.ErrorIs(t, err, ErrKeriaConnectionBroken)
	assert.Equal(t, 1, hooks)
}
