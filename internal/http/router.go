package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/userdeck/internal/service"
	"github.com/aussiebroadwan/userdeck/internal/store"
	"github.com/aussiebroadwan/userdeck/pkg/httpx"
	"github.com/aussiebroadwan/userdeck/pkg/slogx"
	"github.com/aussiebroadwan/userdeck/web"

	_ "github.com/aussiebroadwan/userdeck/api/userdeck" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	CredentialService *service.CredentialService
	TokenService      *service.TokenService
	UserService       *service.UserService
	BootstrapService  *service.BootstrapService
}

func NewRouter(
	buildVersion string,
	corsOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Global middleware chain, applied outermost-first.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerBootstrap()
	r.registerDiagnostics()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())
	r.Mux.Handle("GET /", http.FileServerFS(web.Assets))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			UserDeck API
//	@version		0.1.0
//	@description	Minimal user management backend with password login and HS256 bearer tokens.
//	@description
//	@description	Tokens are valid for 8 hours with a 30 second clock-skew allowance on both bounds. Rotating the signing secret invalidates every outstanding token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/userdeck
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
//	@description				Bearer token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /auth/login - strict rate limit by IP (credential guessing target)
	loginHandler := &LoginHandler{
		Credentials: r.CredentialService,
		Tokens:      r.TokenService,
	}
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /auth/me - authenticated, lenient limit
	r.Mux.Handle("GET /auth/me",
		httpx.Chain(&MeHandler{},
			AuthnMiddleware(r.TokenService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Users: r.UserService}

	// Reads are public, writes require an admin bearer token.
	r.Mux.Handle("GET /users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			AuthnMiddleware(r.TokenService),
			RequireAdmin(),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			AuthnMiddleware(r.TokenService),
			RequireAdmin(),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			AuthnMiddleware(r.TokenService),
			RequireAdmin(),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	r.Mux.Handle("POST /bootstrap",
		httpx.Chain(&BootstrapHandler{Bootstrap: r.BootstrapService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerDiagnostics() {
	r.Mux.Handle("GET /ping",
		httpx.Chain(PingHandler(), httpx.RateLimitByIP(httpx.PublicLimit)),
	)
	r.Mux.Handle("GET /time",
		httpx.Chain(TimeHandler(), httpx.RateLimitByIP(httpx.PublicLimit)),
	)
	r.Mux.Handle("GET /greet",
		httpx.Chain(GreetHandler(), httpx.RateLimitByIP(httpx.PublicLimit)),
	)
	r.Mux.Handle("POST /echo",
		httpx.Chain(EchoHandler(), httpx.RateLimitByIP(httpx.PublicLimit)),
	)
	r.Mux.Handle("GET /db/ping",
		httpx.Chain(DBPingHandler(r.store), httpx.RateLimitByIP(httpx.LenientLimit)),
	)

	// Token-gated diagnostic; any authenticated user may call it.
	r.Mux.Handle("GET /secure",
		httpx.Chain(SecureHandler(),
			AuthnMiddleware(r.TokenService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
