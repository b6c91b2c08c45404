package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/service"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/aussiebroadwan/charauth/pkg/httpx"
	"github.com/aussiebroadwan/charauth/pkg/jwtx"
	"github.com/aussiebroadwan/charauth/pkg/slogx"

	_ "github.com/aussiebroadwan/charauth/api/charauth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits selects the bucket sizes used by each route group. Zero fields
// fall back to the httpx profiles.
type RateLimits struct {
	Strict   httpx.RateLimit
	Moderate httpx.RateLimit
	Lenient  httpx.RateLimit
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	Limits         RateLimits
	AllowedOrigins []string // CORS; empty allows any origin
	Gate           *service.Gate
	Credentials    *service.Credentials
	Auth           *service.AuthService
	MFA            *service.MFAService
	Characters     *service.CharacterService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ApplyRoutes registers every route. Service fields must be set first.
func (r *Router) ApplyRoutes() {
	r.Limits.Strict = r.Limits.Strict.OrDefault(httpx.StrictLimit)
	r.Limits.Moderate = r.Limits.Moderate.OrDefault(httpx.ModerateLimit)
	r.Limits.Lenient = r.Limits.Lenient.OrDefault(httpx.LenientLimit)

	// Inside the request logger so preflights are still logged.
	r.middlewares = append(r.middlewares, httpx.CORS(r.AllowedOrigins))

	r.registerAuth()
	r.registerMFA()
	r.registerCharacters()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Character Auth Service API
//	@version		0.1.0
//	@description	Credential and access-control service in front of the character API.
//	@description	Access tokens are HS256 JWTs presented as bearer tokens.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/charauth
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured puts h behind the authentication gate, an optional role check
// and a per-user rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimit, roles ...domain.Role) http.Handler {
	mws := []httpx.Middleware{authenticate(r.Gate)}
	if len(roles) > 0 {
		mws = append(mws, requireRoles(r.Gate, roles...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Credentials: r.Credentials, Auth: r.Auth}

	// Credential endpoints share one strict per-IP bucket.
	strict := httpx.RateLimitByIP(r.Limits.Strict)
	r.Mux.Handle("POST /auth/register", httpx.Chain(http.HandlerFunc(h.HandleRegister), strict))
	r.Mux.Handle("POST /auth/login", httpx.Chain(http.HandlerFunc(h.HandleLogin), strict))
	r.Mux.Handle("POST /auth/refresh", httpx.Chain(http.HandlerFunc(h.HandleRefresh), strict))

	// Logout only needs a bearer token; a token that no longer verifies is
	// accepted so clients can always clear their state.
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(r.Limits.Moderate),
		),
	)

	r.Mux.Handle("GET /auth/me", r.secured(http.HandlerFunc(h.HandleMe), r.Limits.Lenient))
}

func (r *Router) registerMFA() {
	h := &MFAHandler{MFAService: r.MFA}

	r.Mux.Handle("POST /auth/mfa/enroll", r.secured(http.HandlerFunc(h.HandleEnroll), r.Limits.Moderate))

	// Strict to stop brute forcing of TOTP codes.
	r.Mux.Handle("POST /auth/mfa/verify", r.secured(http.HandlerFunc(h.HandleVerify), r.Limits.Strict))
}

func (r *Router) registerCharacters() {
	h := &CharactersHandler{Characters: r.Characters}

	r.Mux.Handle("GET /characters",
		r.secured(http.HandlerFunc(h.HandleList), r.Limits.Lenient))
	r.Mux.Handle("GET /characters/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), r.Limits.Lenient))
	r.Mux.Handle("POST /characters",
		r.secured(http.HandlerFunc(h.HandleCreate), r.Limits.Moderate, domain.RoleAdmin, domain.RoleUser))
	r.Mux.Handle("PATCH /characters/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), r.Limits.Moderate, domain.RoleAdmin))
	r.Mux.Handle("DELETE /characters/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), r.Limits.Moderate, domain.RoleAdmin))
}

func (r *Router) registerSystem() {
	// Monitoring may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.Limits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(r.Limits.Lenient),
		),
	)
}
