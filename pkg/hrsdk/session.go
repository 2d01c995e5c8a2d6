package hrsdk

import (
	"context"
	"net/http"
	"sync"
)

// Session represents an authenticated session with the HR service. It holds
// the bearer token issued at sign-in and the employee record it belongs to.
type Session struct {
	client *SDKClient

	mu       sync.RWMutex
	token    string
	employee Employee
}

// newSession creates a new authenticated session from a sign-in or sign-up response.
func newSession(client *SDKClient, resp *SessionResponse) *Session {
	return &Session{
		client:   client,
		token:    resp.Token,
		employee: resp.Employee,
	}
}

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Employee returns the employee record as of the last server response that
// carried one (sign-in, sign-up, CurrentSession or UpdateProfile).
func (s *Session) Employee() Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employee
}

// setEmployee refreshes the cached employee record.
func (s *Session) setEmployee(e Employee) {
	s.mu.Lock()
	s.employee = e
	s.mu.Unlock()
}

// SignOut ends the session on the server. The token becomes useless to the
// caller afterwards even though it is not revoked server-side before expiry.
func (s *Session) SignOut(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/auth/signout", nil, nil)
	if err != nil {
		return err
	}

	if err := checkStatusNoContent(resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.employee = Employee{}
	s.mu.Unlock()

	return nil
}

// CurrentSession fetches the employee record bound to this session's token.
func (s *Session) CurrentSession(ctx context.Context) (*Employee, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/auth/session", nil, nil)
	if err != nil {
		return nil, err
	}

	var sessionResp SessionResponse
	if err := decodeJSON(resp, &sessionResp, http.StatusOK); err != nil {
		return nil, err
	}

	s.setEmployee(sessionResp.Employee)
	return &sessionResp.Employee, nil
}
