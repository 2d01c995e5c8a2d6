package http

import (
	"net/http"

	"github.com/dayflowhq/dayflow/internal/hr/service"
)

type SignOutHandler struct {
	DirectoryService *service.DirectoryService
}

// ServeHTTP handles sign-out.
//
//	@Summary		Sign out
//	@Description	Ends the active session. Signing out when no session is active
//	@Description	still succeeds.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"Session ended"
//	@Failure		401	{object}	hrsdk.ErrorResponse	"Invalid or missing session token"
//	@Router			/v1/auth/signout [post].
func (h *SignOutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.DirectoryService.SignOut(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
