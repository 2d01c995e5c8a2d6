package hr_test

import (
	"testing"

	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/stretchr/testify/require"
)

// TestSignInWithSeededEmployee verifies the demo roster is signed in with the
// documented credentials.
func TestSignInWithSeededEmployee(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)

	emp := session.Employee()
	require.Equal(t, "EMP001", emp.EmployeeID)
	require.Equal(t, "John Doe", emp.Name)
	require.Equal(t, "employee", emp.Role)
	require.Equal(t, "Engineering", emp.Department)
	require.Equal(t, "Software Engineer", emp.Position)
	require.Equal(t, "2023-01-15", emp.JoinDate)
	require.InDelta(t, 75000, emp.Salary, 0.001)
}

// TestSignInDoesNotRevealWhichCredentialFailed verifies an unknown email and a
// wrong password produce indistinguishable errors.
func TestSignInDoesNotRevealWhichCredentialFailed(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, errUnknown := client.SignIn(ctx, "nobody@dayflow.com", "password123")
	unknownAPIErr := assertAPIError(t, errUnknown, hrsdk.ErrorCodeInvalidCredentials)

	_, errWrongPass := client.SignIn(ctx, johnEmail, "not-the-password")
	wrongPassAPIErr := assertAPIError(t, errWrongPass, hrsdk.ErrorCodeInvalidCredentials)

	require.Equal(t, unknownAPIErr.Error(), wrongPassAPIErr.Error(),
		"both failure modes must produce the same error")
}

// TestSignInEmailIsCaseSensitive verifies the email lookup is an exact
// string match: a case-variant of a registered address does not sign in.
func TestSignInEmailIsCaseSensitive(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)

	_, err := client.SignIn(t.Context(), "John.Doe@Dayflow.com", johnPassword)
	assertAPIError(t, err, hrsdk.ErrorCodeInvalidCredentials)

	session := signInAs(t, client, johnEmail, johnPassword)
	require.Equal(t, "EMP001", session.Employee().EmployeeID)
}

// TestSignUpAssignsDefaults verifies a fresh sign-up gets the service-assigned
// staff number, role and placeholder department.
func TestSignUpAssignsDefaults(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)

	session, err := client.SignUp(t.Context(), hrsdk.SignUpRequest{
		Name:     "New Hire",
		Email:    "new.hire@dayflow.com",
		Password: "secret123",
		Phone:    "555-0000",
	})
	require.NoError(t, err)

	emp := session.Employee()
	require.Equal(t, "EMP004", emp.EmployeeID, "numbering continues after the seeded roster")
	require.Equal(t, "employee", emp.Role)
	require.Equal(t, "Not Assigned", emp.Department)
	require.Equal(t, "Not Assigned", emp.Position)
	require.InDelta(t, 50000, emp.Salary, 0.001)
	require.NotEmpty(t, session.Token(), "sign-up should also sign the employee in")
}

// TestSignUpWithChosenStaffNumberAndRole verifies a registration may carry
// its own staff number and role.
func TestSignUpWithChosenStaffNumberAndRole(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)

	session, err := client.SignUp(t.Context(), hrsdk.SignUpRequest{
		EmployeeID: "EMP010",
		Name:       "Alex Admin",
		Email:      "alex@dayflow.com",
		Password:   "secret123",
		Role:       "admin",
	})
	require.NoError(t, err)

	emp := session.Employee()
	require.Equal(t, "EMP010", emp.EmployeeID)
	require.Equal(t, "admin", emp.Role)
	require.Equal(t, "Not Assigned", emp.Department)
	require.InDelta(t, 50000, emp.Salary, 0.001)
}

// TestSignUpRejectsDuplicateStaffNumber verifies a taken staff number is as
// fatal as a taken email.
func TestSignUpRejectsDuplicateStaffNumber(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)

	_, err := client.SignUp(t.Context(), hrsdk.SignUpRequest{
		EmployeeID: "EMP001",
		Name:       "Impostor",
		Email:      "someone.else@dayflow.com",
		Password:   "secret123",
	})
	assertAPIError(t, err, hrsdk.ErrorCodeDuplicateIdentity)
}

// TestSignUpRejectsDuplicateEmail verifies the seeded email cannot be reused.
func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)

	_, err := client.SignUp(t.Context(), hrsdk.SignUpRequest{
		Name:     "Impostor",
		Email:    johnEmail,
		Password: "secret123",
	})
	assertAPIError(t, err, hrsdk.ErrorCodeDuplicateIdentity)
}

// TestSignUpValidatesInput verifies incomplete registrations are rejected.
func TestSignUpValidatesInput(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	cases := []struct {
		name string
		req  hrsdk.SignUpRequest
	}{
		{"missing name", hrsdk.SignUpRequest{Email: "a@b.com", Password: "secret123"}},
		{"missing email", hrsdk.SignUpRequest{Name: "A", Password: "secret123"}},
		{"malformed email", hrsdk.SignUpRequest{Name: "A", Email: "not-an-email", Password: "secret123"}},
		{"short password", hrsdk.SignUpRequest{Name: "A", Email: "a@b.com", Password: "tiny"}},
		{"unknown role", hrsdk.SignUpRequest{Name: "A", Email: "a@b.com", Password: "secret123", Role: "superuser"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.SignUp(ctx, tc.req)
			assertAPIError(t, err, hrsdk.ErrorCodeInvalidRequest)
		})
	}
}

// TestSessionFollowsSignInAndSignOut verifies the current-session endpoint
// tracks sign-in and sign-out.
func TestSessionFollowsSignInAndSignOut(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session := signInAs(t, client, johnEmail, johnPassword)

	current, err := session.CurrentSession(ctx)
	require.NoError(t, err)
	require.Equal(t, "EMP001", current.EmployeeID)

	token := session.Token()
	require.NoError(t, session.SignOut(ctx))

	// The token is still cryptographically valid but the session is gone.
	stale := client.NewSessionFromToken(token)
	_, err = stale.CurrentSession(ctx)
	assertAPIError(t, err, hrsdk.ErrorCodeNoActiveSession)
}

// TestProfileUpdateAfterSignOutIsRejected verifies a token that outlives its
// session cannot keep writing to the profile.
func TestProfileUpdateAfterSignOutIsRejected(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	session := signInAs(t, client, johnEmail, johnPassword)
	token := session.Token()
	require.NoError(t, session.SignOut(ctx))

	stale := client.NewSessionFromToken(token)
	_, err := stale.UpdateProfile(ctx, hrsdk.ProfileUpdateRequest{
		Name: hrsdk.String("Ghost Writer"),
	})
	assertAPIError(t, err, hrsdk.ErrorCodeNoActiveSession)
}

// TestSignInReplacesActiveSession verifies a second sign-in takes over the
// single session slot.
func TestSignInReplacesActiveSession(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	first := signInAs(t, client, johnEmail, johnPassword)
	second := signInAs(t, client, janeEmail, janePassword)

	current, err := second.CurrentSession(ctx)
	require.NoError(t, err)
	require.Equal(t, "EMP003", current.EmployeeID, "the later sign-in owns the session")

	_ = first // first session's slot has been replaced
}

// TestRequestWithoutTokenIsRejected verifies bearer auth is enforced.
func TestRequestWithoutTokenIsRejected(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)

	empty := client.NewSessionFromToken("")
	_, err := empty.CurrentSession(t.Context())
	assertAPIError(t, err, hrsdk.ErrorCodeInvalidToken)
}

// TestRequestWithGarbageTokenIsRejected verifies token validation.
func TestRequestWithGarbageTokenIsRejected(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)

	bogus := client.NewSessionFromToken("not.a.jwt")
	_, err := bogus.CurrentSession(t.Context())
	assertAPIError(t, err, hrsdk.ErrorCodeInvalidToken)
}
