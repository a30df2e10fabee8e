package auth

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/burundanga/burundanga-api/internal/rbac"
)

// AttachRoleFromDB replaces the token's role claim with the authoritative
// role from the users table. Tokens keep working after a moderator promotion
// or demotion without reissue. Falls back to the claim role when the user
// row is missing (e.g. a token issued before a DB wipe in dev).
func AttachRoleFromDB(db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sub := SubjectFromContext(ctx)

			var role string
			err := db.QueryRowContext(ctx,
				`SELECT role FROM users WHERE id=$1 OR username=$1`,
				sub,
			).Scan(&role)

			switch {
			case err == nil && role != "":
				next.ServeHTTP(w, r.WithContext(rbac.WithRole(ctx, role)))
			case errors.Is(err, sql.ErrNoRows):
				next.ServeHTTP(w, r) // keep claim role from JWTMiddleware
			default:
				http.Error(w, "forbidden", http.StatusForbidden)
			}
		})
	}
}
