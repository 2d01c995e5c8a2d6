package hrsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListEmployees returns the full directory in insertion order.
// Requires the admin role.
func (s *Session) ListEmployees(ctx context.Context) ([]Employee, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/employees", nil, nil)
	if err != nil {
		return nil, err
	}

	var listResp ListEmployeesResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	return listResp.Employees, nil
}

// GetEmployee returns a single employee record by its ULID.
// Requires the admin role.
func (s *Session) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/employees/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	var employee Employee
	if err := decodeJSON(resp, &employee, http.StatusOK); err != nil {
		return nil, err
	}

	return &employee, nil
}

// AdminUpdateEmployee applies a partial update to any employee record,
// including role changes. Requires the admin role.
func (s *Session) AdminUpdateEmployee(ctx context.Context, id string, req AdminEmployeeUpdateRequest) (*Employee, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/v1/employees/"+id, bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var employee Employee
	if err := decodeJSON(resp, &employee, http.StatusOK); err != nil {
		return nil, err
	}

	return &employee, nil
}
