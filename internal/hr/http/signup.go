package http

import (
	"encoding/json"
	"net/http"

	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
)

type SignUpHandler struct {
	DirectoryService *service.DirectoryService
}

// ServeHTTP handles self-service registration.
//
//	@Summary		Sign up
//	@Description	Registers a new employee and signs them in. The staff number and
//	@Description	role may be supplied; department, position, salary and join date
//	@Description	are assigned by the service.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrsdk.SignUpRequest		true	"Registration details"
//	@Success		201		{object}	hrsdk.SessionResponse	"Session token and the new employee record"
//	@Failure		400		{object}	hrsdk.ErrorResponse		"Malformed or incomplete request"
//	@Failure		409		{object}	hrsdk.ErrorResponse		"Email or staff number already registered"
//	@Failure		429		{object}	hrsdk.ErrorResponse		"Rate limit exceeded"
//	@Router			/v1/auth/signup [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hrsdk.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hrsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	emp, token, err := h.DirectoryService.SignUp(ctx, service.SignUpParams{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Secret:     req.Password,
		Role:       req.Role,
		Phone:      req.Phone,
		Address:    req.Address,
	})
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
	httpx.WriteJSON(w, http.StatusCreated, response)
}
