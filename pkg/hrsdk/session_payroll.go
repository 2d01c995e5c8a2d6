package hrsdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetPayroll returns the signed-in employee's payroll statement for a month
// (formatted YYYY-MM). An empty month means the current month.
func (s *Session) GetPayroll(ctx context.Context, month string) (*PayrollStatement, error) {
	path := "/v1/payroll"
	if month != "" {
		path += "?month=" + url.QueryEscape(month)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var statement PayrollStatement
	if err := decodeJSON(resp, &statement, http.StatusOK); err != nil {
		return nil, err
	}

	return &statement, nil
}

// PayrollHistory returns payroll statements from the join month through the
// current month, newest first.
func (s *Session) PayrollHistory(ctx context.Context) ([]PayrollStatement, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/payroll/history", nil, nil)
	if err != nil {
		return nil, err
	}

	var history PayrollHistoryResponse
	if err := decodeJSON(resp, &history, http.StatusOK); err != nil {
		return nil, err
	}

	return history.Statements, nil
}
