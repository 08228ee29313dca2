package httpx

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/acadeval/encuestas/pkg/jwtx"
	"github.com/acadeval/encuestas/pkg/slogx"
)

// AccessVerifier verifies a raw access token and returns its claims.
type AccessVerifier interface {
	VerifyAccess(raw string) (jwtx.Claims, error)
}

// RequireRoles gates a route behind a bearer access token and a role
// allow-list. Responses:
//
//   - 401 when no bearer token is present
//   - 403 when verification fails for any reason (expired tokens included;
//     the refresh flow is where expiry gets its own treatment)
//   - 401 when the verified role claim is not in the allow-list
//
// On success the user id, role and full claims are attached to the request
// context. The role check is plain set membership; no role implies another.
func RequireRoles(v AccessVerifier, allowed ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Necesita iniciar sesión")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.VerifyAccess(raw)
			if err != nil {
				log.Warn("access token rejected", "err", err)
				WriteError(w, http.StatusForbidden, "Permiso denegado")
				return
			}

			if !slices.Contains(allowed, claims.Role) {
				log.Warn("role not allowed", "role", claims.Role)
				WriteError(w, http.StatusUnauthorized, "No tiene permisos para esta acción")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.UserID())
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
