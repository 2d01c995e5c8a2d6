package hr_test

import (
	"errors"
	"testing"

	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/stretchr/testify/require"
)

// TestSignInRateLimiting verifies the strict limit kicks in on repeated
// credential failures from one client.
func TestSignInRateLimiting(t *testing.T) {
	baseURL, cleanup := setupHRContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	// The strict profile allows 5 requests per minute. Burn through them with
	// bad credentials, then expect 429s.
	limited := false
	for range 10 {
		_, err := client.SignIn(ctx, johnEmail, "wrong-password")
		require.Error(t, err)

		var apiErr *hrsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		if apiErr.Code == hrsdk.ErrorCodeRateLimited {
			limited = true
			break
		}
		require.Equal(t, hrsdk.ErrorCodeInvalidCredentials, apiErr.Code)
	}

	require.True(t, limited, "repeated sign-in failures should eventually be rate limited")
}

// TestHealthEndpointsAreNotStrictlyLimited verifies probes stay available
// under the public profile.
func TestHealthEndpointsAreNotStrictlyLimited(t *testing.T) {
	baseURL, cleanup := setupHRContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	for range 20 {
		health, err := client.GetLiveness(ctx)
		assertHealthy(t, health, err)
	}
}
