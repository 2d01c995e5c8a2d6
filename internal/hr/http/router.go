package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/internal/hr/store"
	"github.com/dayflowhq/dayflow/pkg/httpx"
	"github.com/dayflowhq/dayflow/pkg/jwtx"
	"github.com/dayflowhq/dayflow/pkg/slogx"

	_ "github.com/dayflowhq/dayflow/api/hr" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	DirectoryService  *service.DirectoryService
	AttendanceService *service.AttendanceService
	LeaveService      *service.LeaveService
	PayrollService    *service.PayrollService
	StatsService      *service.StatsService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerDirectory()
	r.registerAttendance()
	r.registerLeave()
	r.registerPayroll()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Dayflow HR Service API
//	@version		0.1.0
//	@description	HR management service covering the employee directory, sessions,
//	@description	attendance tracking, leave management and payroll statements.
//	@description
//	@description				Session tokens are signed with EdDSA and can be verified using the JWKS endpoint.
//
//	@contact.name				Dayflow Team
//	@contact.url				https://github.com/dayflowhq/dayflow
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signIn := &SignInHandler{DirectoryService: r.DirectoryService}
	signUp := &SignUpHandler{DirectoryService: r.DirectoryService}
	signOut := &SignOutHandler{DirectoryService: r.DirectoryService}
	session := &SessionHandler{DirectoryService: r.DirectoryService}

	// Credential endpoints get the strict limit to slow brute force.
	r.Mux.Handle("POST /v1/auth/signin",
		httpx.Chain(signIn,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signUp,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/signout",
		httpx.Chain(signOut,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/auth/session",
		httpx.Chain(session,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{DirectoryService: r.DirectoryService}

	r.Mux.Handle("PATCH /v1/profile",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerDirectory() {
	h := &EmployeesHandler{DirectoryService: r.DirectoryService}

	// Directory endpoints are admin-only. The role check here is a fast
	// refusal; the service enforces it again.
	r.Mux.Handle("GET /v1/employees",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/employees/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/employees/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByEmployee(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAttendance() {
	h := &AttendanceHandler{AttendanceService: r.AttendanceService}

	r.Mux.Handle("POST /v1/attendance/checkin",
		httpx.Chain(http.HandlerFunc(h.HandleCheckIn),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/attendance/checkout",
		httpx.Chain(http.HandlerFunc(h.HandleCheckOut),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/attendance",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/attendance/summary",
		httpx.Chain(http.HandlerFunc(h.HandleSummary),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerLeave() {
	h := &LeaveHandler{
		LeaveService:     r.LeaveService,
		DirectoryService: r.DirectoryService,
	}

	r.Mux.Handle("POST /v1/leave",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/leave",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPayroll() {
	h := &PayrollHandler{
		PayrollService:   r.PayrollService,
		DirectoryService: r.DirectoryService,
	}

	r.Mux.Handle("GET /v1/payroll",
		httpx.Chain(http.HandlerFunc(h.HandleStatement),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/payroll/history",
		httpx.Chain(http.HandlerFunc(h.HandleHistory),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	stats := &StatsHandler{StatsService: r.StatsService}
	attendance := &AttendanceHandler{AttendanceService: r.AttendanceService}
	leave := &LeaveHandler{
		LeaveService:     r.LeaveService,
		DirectoryService: r.DirectoryService,
	}

	r.Mux.Handle("GET /v1/admin/stats",
		httpx.Chain(stats,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/admin/attendance",
		httpx.Chain(http.HandlerFunc(attendance.HandleAdminList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/admin/leave",
		httpx.Chain(http.HandlerFunc(leave.HandleListAll),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByEmployee(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/admin/leave/{id}/review",
		httpx.Chain(http.HandlerFunc(leave.HandleReview),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByEmployee(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
