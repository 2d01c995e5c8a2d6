package hrsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Dayflow HR service.
// It provides access to unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new HR service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignIn authenticates with an email and password and returns an
// authenticated Session on success.
func (c *SDKClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/signin", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var sessionResp SessionResponse
	if err := decodeJSON(resp, &sessionResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &sessionResp), nil
}

// SignUp registers a new employee account and returns an authenticated
// Session for it. The staff number and role may be chosen by the caller;
// department, position, salary and join date are assigned by the service.
func (c *SDKClient) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/signup", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var sessionResp SessionResponse
	if err := decodeJSON(resp, &sessionResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return newSession(c, &sessionResp), nil
}

// NewSessionFromToken creates an authenticated session from an existing
// bearer token. This is useful when a token from a previous sign-in was
// persisted (e.g., on disk) and should be resumed.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{
		client: c,
		token:  token,
	}
}
