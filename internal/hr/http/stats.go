package http

import (
	"net/http"

	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// ServeHTTP returns the admin dashboard aggregate.
//
//	@Summary		Directory statistics
//	@Description	Returns headcount, today's attendance, pending leave requests and
//	@Description	the per-department breakdown. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hrsdk.StatsResponse	"Directory statistics"
//	@Failure		401	{object}	hrsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403	{object}	hrsdk.ErrorResponse	"Caller is not an admin"
//	@Router			/v1/admin/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.StatsService.Stats(ctx, httpx.RoleFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := hrsdk.StatsResponse{
		TotalEmployees:       stats.TotalEmployees,
		PresentToday:         stats.PresentToday,
		PendingLeaveRequests: stats.PendingLeaveRequests,
		Departments:          stats.Departments,
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
