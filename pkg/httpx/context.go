package httpx

import "context"

type ctxKey string

const (
	CtxKeyEmployeeID ctxKey = "employee_id"
	CtxKeyRole       ctxKey = "role"
	CtxKeyClaims     ctxKey = "claims" // full jwtx.Claims if needed
)

// EmployeeIDFromCtx returns the authenticated employee's directory id, or ""
// when the request is unauthenticated.
func EmployeeIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyEmployeeID).(string); ok {
		return v
	}
	return ""
}

// RoleFromCtx returns the authenticated employee's role, or "" when the
// request is unauthenticated.
func RoleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
