package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
)

type ProfileHandler struct {
	DirectoryService *service.DirectoryService
}

// Fields that can never be changed through a profile patch.
var immutableProfileFields = []string{"id", "employeeId", "email", "role"}

// ServeHTTP handles self-service profile updates.
//
//	@Summary		Update profile
//	@Description	Applies a partial update to the caller's own record. Fields absent
//	@Description	from the body are left untouched. Requests naming id, employeeId,
//	@Description	email or role are rejected outright.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrsdk.ProfileUpdateRequest	true	"Fields to change"
//	@Success		200		{object}	hrsdk.Employee				"Updated employee record"
//	@Failure		400		{object}	hrsdk.ErrorResponse			"Malformed body or immutable field"
//	@Failure		401		{object}	hrsdk.ErrorResponse			"Invalid or missing session token"
//	@Router			/v1/profile [patch].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID := httpx.EmployeeIDFromCtx(ctx)
	if employeeID == "" {
		hrsdk.ErrInvalidToken.WriteError(w)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		hrsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	update, apiErr := parseProfilePatch(body)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	emp, err := h.DirectoryService.UpdateProfile(ctx, employeeID, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toWireEmployee(emp))
}

// parseProfilePatch decodes a profile patch body, refusing immutable fields
// before the typed decode.
func parseProfilePatch(body []byte) (domain.ProfileUpdate, *hrsdk.APIError) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.ProfileUpdate{}, hrsdk.ErrInvalidRequest
	}
	for _, field := range immutableProfileFields {
		if _, present := raw[field]; present {
			return domain.ProfileUpdate{}, hrsdk.ErrImmutableField
		}
	}

	var req hrsdk.ProfileUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return domain.ProfileUpdate{}, hrsdk.ErrInvalidRequest
	}

	update := domain.ProfileUpdate{
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
	}
	if req.JoinDate != nil {
		joined, err := time.Parse(domain.DateFormat, *req.JoinDate)
		if err != nil {
			return domain.ProfileUpdate{}, hrsdk.ErrInvalidRequest
		}
		update.JoinDate = &joined
	}
	return update, nil
}
