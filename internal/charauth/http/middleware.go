package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/service"
	"github.com/aussiebroadwan/charauth/pkg/authsdk"
	"github.com/aussiebroadwan/charauth/pkg/httpx"
	"github.com/aussiebroadwan/charauth/pkg/slogx"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p domain.Principal) context.Context {
	ctx = context.WithValue(ctx, principalKey{}, p)
	return httpx.WithUserID(ctx, p.ID)
}

// principalFrom returns the principal stored by authenticate.
func principalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// authenticate runs the authentication gate and stores the principal in the
// request context. Missing credentials get 401; anything presented but not
// trusted gets 403.
func authenticate(gate *service.Gate) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p, err := gate.Authenticate(ctx, r.Header.Get("Authorization"))
			switch {
			case err == nil:
			case errors.Is(err, service.ErrUnauthorized):
				authsdk.ErrMissingToken.WriteError(w)
				return
			default:
				authsdk.ErrInvalidToken.WriteError(w)
				return
			}

			ctx = slogx.With(withPrincipal(ctx, p), "user_id", p.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireRoles runs the authorization gate. It must sit behind authenticate.
func requireRoles(gate *service.Gate, roles ...domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := principalFrom(r.Context())
			if !ok {
				authsdk.ErrMissingToken.WriteError(w)
				return
			}

			if err := gate.Authorize(p, roles...); err != nil {
				slogx.FromContext(r.Context()).Info("access denied",
					"role", p.Role,
					"path", r.URL.Path,
				)
				authsdk.ErrInsufficientPermissions.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
