package middleware

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wagetime/wagetime-backend-go/internal/domain/employee"
	"github.com/wagetime/wagetime-backend-go/internal/domain/identity"
	"github.com/wagetime/wagetime-backend-go/internal/handler/http/response"
)

type actorContextKey struct{}

// ActorFromContext returns the authenticated actor placed by AuthRequired.
func ActorFromContext(ctx context.Context) (identity.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(identity.Actor)
	return actor, ok
}

// AuthRequired verifies the access token and builds the acting identity from
// its claims. Every route behind it can assume ActorFromContext succeeds.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			employeeID, ok := claims["employee_id"].(string)
			if !ok || employeeID == "" {
				response.Unauthorized(w, "Token is missing employee identity")
				return
			}
			companyID, ok := claims["company_id"].(string)
			if !ok || companyID == "" {
				response.Unauthorized(w, "Token is missing company identity")
				return
			}
			role, ok := claims["role"].(string)
			if !ok || role == "" {
				response.Unauthorized(w, "Token is missing role")
				return
			}

			actor := identity.Actor{
				EmployeeID: employeeID,
				CompanyID:  companyID,
				Role:       employee.Role(role),
			}
			if ip := clientIP(r); ip != "" {
				actor.IPAddress = &ip
			}
			if ua := r.UserAgent(); ua != "" {
				actor.UserAgent = &ua
			}

			ctx := context.WithValue(r.Context(), actorContextKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
