package hrsdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetStats returns headline numbers for the admin dashboard.
// Requires the admin role.
func (s *Session) GetStats(ctx context.Context) (*StatsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/admin/stats", nil, nil)
	if err != nil {
		return nil, err
	}

	var stats StatsResponse
	if err := decodeJSON(resp, &stats, http.StatusOK); err != nil {
		return nil, err
	}

	return &stats, nil
}

// ListAllAttendance returns every employee's attendance for one calendar day
// (formatted YYYY-MM-DD). An empty date means today. Requires the admin role.
func (s *Session) ListAllAttendance(ctx context.Context, date string) ([]AttendanceRecord, error) {
	path := "/v1/admin/attendance"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
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
