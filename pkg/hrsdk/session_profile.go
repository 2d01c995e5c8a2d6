package hrsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// UpdateProfile applies a partial update to the signed-in employee's own
// record and returns the updated projection. Identity fields cannot be
// changed this way; the service rejects requests that include them.
func (s *Session) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*Employee, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/v1/profile", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var employee Employee
	if err := decodeJSON(resp, &employee, http.StatusOK); err != nil {
		return nil, err
	}

	s.setEmployee(employee)
	return &employee, nil
}
