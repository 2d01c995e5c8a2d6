package http

import (
	"net/http"

	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
)

type SessionHandler struct {
	DirectoryService *service.DirectoryService
}

// ServeHTTP returns the employee behind the active session.
//
//	@Summary		Current session
//	@Description	Returns the employee record for the active session. No token is
//	@Description	reissued; the response carries only the employee.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hrsdk.SessionResponse	"Active session employee"
//	@Failure		401	{object}	hrsdk.ErrorResponse		"No active session"
//	@Router			/v1/auth/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	emp, err := h.DirectoryService.CurrentSession(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := hrsdk.SessionResponse{
		Employee: toWireEmployee(emp),
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
