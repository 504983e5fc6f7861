package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"milestone-escrow/internal/config/configs"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.OTel{ServiceName: "test"}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// non-routable, nothing is exported without spans
	for _, endpoint := range []string{"192.0.2.1:4318", "http://192.0.2.1:4318"} {
		shutdown, err := Setup(context.Background(), configs.OTel{
			Endpoint:    endpoint,
			Insecure:    true,
			ServiceName: "test",
			SampleRatio: 1,
		}, "test")
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	}
}
