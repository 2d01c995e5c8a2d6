package http

import (
	"encoding/json"
	"net/http"

	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
)

type SignInHandler struct {
	DirectoryService *service.DirectoryService
}

// ServeHTTP handles employee sign-in.
//
//	@Summary		Sign in
//	@Description	Exchanges an email and password for a session token. The error
//	@Description	response never reveals whether the email or the password was wrong.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrsdk.SignInRequest		true	"Credentials"
//	@Success		200		{object}	hrsdk.SessionResponse	"Session token and employee record"
//	@Failure		400		{object}	hrsdk.ErrorResponse		"Malformed request body"
//	@Failure		401		{object}	hrsdk.ErrorResponse		"Invalid email or password"
//	@Failure		429		{object}	hrsdk.ErrorResponse		"Rate limit exceeded"
//	@Router			/v1/auth/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hrsdk.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hrsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		hrsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	emp, token, err := h.DirectoryService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := hrsdk.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(h.DirectoryService.TokenTTL.Seconds()),
		Employee:  toWireEmployee(emp),
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
