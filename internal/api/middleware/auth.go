package middleware

import (
	"context"
	"net/http"

	"bookvault/internal/common"
	"bookvault/internal/common/security"
	"bookvault/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UsernameCtxKey contextKey = "username"
	RolesCtxKey    contextKey = "roles"
)

// Authenticator rejects the request with 401 before any business logic runs
// unless a verifiable token is present. The identity and role claim come
// solely from the token; the credential store is never consulted here.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required or invalid")
			return
		}

		username, err := security.GetSubjectFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		roles, err := security.GetRolesFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), UsernameCtxKey, username)
		ctx = context.WithValue(ctx, RolesCtxKey, roles)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly yields 403 for a valid but under-privileged token, distinct from
// the 401 of a missing or invalid one.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roles, ok := r.Context().Value(RolesCtxKey).([]string)
		if !ok || !security.HasRole(roles, model.RoleAdmin) {
			common.RespondWithError(w, http.StatusForbidden, "Admins only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Helper to get the authenticated username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// Helper to get the token's role claim from context
func GetRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(RolesCtxKey).([]string)
	return roles, ok
}
