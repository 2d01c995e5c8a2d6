package hrsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CheckIn records the start of today's attendance for the signed-in employee.
// Checking in twice on the same day returns a conflict error.
func (s *Session) CheckIn(ctx context.Context) (*AttendanceRecord, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/attendance/checkin", nil, nil)
	if err != nil {
		return nil, err
	}

	var record AttendanceRecord
	if err := decodeJSON(resp, &record, http.StatusCreated); err != nil {
		return nil, err
	}

	return &record, nil
}

// CheckOut closes today's attendance record and computes worked hours.
func (s *Session) CheckOut(ctx context.Context) (*AttendanceRecord, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/attendance/checkout", nil, nil)
	if err != nil {
		return nil, err
	}

	var record AttendanceRecord
	if err := decodeJSON(resp, &record, http.StatusOK); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListAttendance returns the signed-in employee's attendance records for a
// month (formatted YYYY-MM), newest first. An empty month means all records.
func (s *Session) ListAttendance(ctx context.Context, month string) ([]AttendanceRecord, error) {
	path := "/v1/attendance"
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var listResp ListAttendanceResponse
	if err := decodeJSON(resp, &listResp, http.StatusOK); err != nil {
		return nil, err
	}

	return listResp.Records, nil
}

// AttendanceSummary returns the aggregated attendance for a month (YYYY-MM).
func (s *Session) AttendanceSummary(ctx context.Context, month string) (*AttendanceSummary, error) {
	path := "/v1/attendance/summary"
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var summary AttendanceSummary
	if err := decodeJSON(resp, &summary, http.StatusOK); err != nil {
		return nil, err
	}

	return &summary, nil
}
