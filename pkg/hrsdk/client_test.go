package hrsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignIn(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth/signin", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "john.doe@dayflow.com", req.Email)
		require.Equal(t, "password123", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SessionResponse{
			Token:     "session-token-123",
			TokenType: "Bearer",
			ExpiresIn: 43200,
			Employee: Employee{
				ID:         "01JC0000000000000000000000",
				EmployeeID: "EMP001",
				Email:      "john.doe@dayflow.com",
				Name:       "John Doe",
				Role:       "employee",
			},
		})
	}))
	defer server.Close()

	client := NewSDKClient(server.URL)
	session, err := client.SignIn(context.Background(), "john.doe@dayflow.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, session)

	require.Equal(t, "session-token-123", session.Token())
	require.Equal(t, "EMP001", session.Employee().EmployeeID)
	require.Equal(t, "John Doe", session.Employee().Name)
}

func TestSignInError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Error:            ErrorCodeInvalidCredentials,
			ErrorDescription: "invalid email or password",
		})
	}))
	defer server.Close()

	client := NewSDKClient(server.URL)
	session, err := client.SignIn(context.Background(), "nobody@dayflow.com", "wrong")
	require.Error(t, err)
	require.Nil(t, session)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, ErrorCodeInvalidCredentials, apiErr.Code)
	require.Equal(t, "invalid email or password", apiErr.Description)
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth/signup", r.URL.Path)

		var req SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "New Person", req.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(SessionResponse{
			Token: "fresh-token",
			Employee: Employee{
				EmployeeID: "EMP004",
				Email:      "new.person@dayflow.com",
				Name:       "New Person",
				Role:       "employee",
				Department: "Not Assigned",
				Position:   "Not Assigned",
				Salary:     50000,
			},
		})
	}))
	defer server.Close()

	client := NewSDKClient(server.URL)
	session, err := client.SignUp(context.Background(), SignUpRequest{
		Name:     "New Person",
		Email:    "new.person@dayflow.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.Equal(t, "fresh-token", session.Token())
	require.Equal(t, "EMP004", session.Employee().EmployeeID)
	require.Equal(t, "Not Assigned", session.Employee().Department)
}

func TestNewSessionFromToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/auth/session", r.URL.Path)
		require.Equal(t, "Bearer resumed-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SessionResponse{
			Employee: Employee{EmployeeID: "EMP002", Name: "Sarah Johnson", Role: "admin"},
		})
	}))
	defer server.Close()

	client := NewSDKClient(server.URL)
	session := client.NewSessionFromToken("resumed-token")
	require.Equal(t, "resumed-token", session.Token())

	// The employee record is not known until the server confirms the token.
	require.Empty(t, session.Employee().EmployeeID)

	emp, err := session.CurrentSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, "EMP002", emp.EmployeeID)
	require.Equal(t, "EMP002", session.Employee().EmployeeID)
}

func TestSignOutClearsSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/auth/signout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewSDKClient(server.URL)
	session := client.NewSessionFromToken("doomed-token")

	require.NoError(t, session.SignOut(context.Background()))
	require.Empty(t, session.Token())
	require.Empty(t, session.Employee().EmployeeID)
}

func TestParseErrorResponseFallback(t *testing.T) {
	t.Parallel()

	// A reverse proxy or load balancer may answer with a non-JSON body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer server.Close()

	client := NewSDKClient(server.URL)
	_, err := client.SignIn(context.Background(), "a@b.c", "pw")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	t.Parallel()

	client := NewSDKClient("https://hr.example.com/")
	require.Equal(t, "https://hr.example.com", client.BaseURL)
	require.Equal(t, "https://hr.example.com/v1/auth/signin", client.url("/v1/auth/signin"))
}
