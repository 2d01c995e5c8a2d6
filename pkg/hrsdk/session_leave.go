package hrsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// SubmitLeave files a new leave request for the signed-in employee.
// New requests always start in the pending state.
func (s *Session) SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (*LeaveRequest, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/leave", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var leave LeaveRequest
	if err := decodeJSON(resp, &leave, http.StatusCreated); err != nil {
		return nil, err
	}

	return &leave, nil
}

// ListMyLeave returns the signed-in employee's leave requests, newest first.
func (s *Session) ListMyLeave(ctx context.Context) ([]LeaveRequest, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/leave", nil, nil)
	if err != nil {
		return nil, err
	}

	var listResp ListLeaveResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	return listResp.Requests, nil
}

// ListAllLeave returns every employee's leave requests, optionally filtered
// by status ("pending", "approved" or "rejected"). Requires the admin role.
func (s *Session) ListAllLeave(ctx context.Context, status string) ([]LeaveRequest, error) {
	path := "/v1/admin/leave"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var listResp ListLeaveResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	return listResp.Requests, nil
}

// ReviewLeave approves or rejects a pending leave request.
// Requires the admin role.
func (s *Session) ReviewLeave(ctx context.Context, id string, req ReviewLeaveRequest) (*LeaveRequest, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/admin/leave/"+id+"/review", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var leave LeaveRequest
	if err := decodeJSON(resp, &leave, http.StatusOK); err != nil {
		return nil, err
	}

	return &leave, nil
}
