package http

import (
	"log/slog"
	"net/http"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/httpx"
	"github.com/acadeval/encuestas/pkg/slogx"

	_ "github.com/acadeval/encuestas/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	logger *slog.Logger
	store  store.Store

	TokenService      *service.TokenService
	AuthService       *service.AuthService
	TwoFactorService  *service.TwoFactorService
	UserService       *service.UserService
	FacultyService    *service.FacultyService
	ProfessorService  *service.ProfessorService
	SurveyService     *service.SurveyService
	CriterionService  *service.CriterionService
	EvaluationService *service.EvaluationService
}

func NewRouter(st store.Store, logger *slog.Logger, corsOrigins []string) *Router {
	r := &Router{
		Mux:    http.NewServeMux(),
		logger: logger,
		store:  st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(corsOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTwoFactor()
	r.registerUsers()
	r.registerFaculties()
	r.registerProfessors()
	r.registerSurveys()
	r.registerCriteria()
	r.registerEvaluations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			API Encuestas Académicas
//	@version		1.0.0
//	@description	Backend de encuestas de evaluación docente: autenticación JWT con 2FA (TOTP) y CRUD de usuarios, facultades, profesores, encuestas, criterios y evaluaciones.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3001
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Token JWT de acceso. Formato: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// management gates a handler behind the roles the source system allows on
// its protected routes.
func (r *Router) management(h http.Handler, extra ...httpx.Middleware) http.Handler {
	mw := append([]httpx.Middleware{
		httpx.RequireRoles(r.TokenService, domain.RoleStrings(domain.ManagementRoles)...),
	}, extra...)
	return httpx.Chain(h, mw...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		))

	r.Mux.Handle("POST /auth/refreshToken",
		r.management(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByUser(httpx.LenientLimit),
		))

	r.Mux.Handle("GET /session",
		r.management(http.HandlerFunc(h.HandleSession)))

	r.Mux.Handle("POST /auth/logout",
		r.management(http.HandlerFunc(h.HandleLogout)))
}

func (r *Router) registerTwoFactor() {
	h := &TwoFactorHandler{TwoFactorService: r.TwoFactorService}

	r.Mux.Handle("POST /auth/2fa/generate",
		r.management(http.HandlerFunc(h.HandleGenerate),
			httpx.RateLimitByUser(httpx.LenientLimit),
		))

	// Code-accepting endpoints get the strict limit; six digits brute-force
	// fast without it.
	r.Mux.Handle("POST /auth/2fa/verify",
		r.management(http.HandlerFunc(h.HandleVerify),
			httpx.RateLimitByUser(httpx.StrictLimit),
		))

	r.Mux.Handle("POST /auth/2fa/validate",
		r.management(http.HandlerFunc(h.HandleValidate),
			httpx.RateLimitByUser(httpx.StrictLimit),
		))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /usuarios", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /usuarios/{id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("POST /usuarios/create", http.HandlerFunc(h.HandleCreate))
	r.Mux.Handle("PUT /usuarios/update/{id}", http.HandlerFunc(h.HandleUpdate))
	r.Mux.Handle("DELETE /usuarios/delete/{id}", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerFaculties() {
	h := &FacultiesHandler{FacultyService: r.FacultyService}

	r.Mux.Handle("GET /facultad", r.management(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /facultad/{id}", r.management(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /facultad/create", r.management(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /facultad/update/{id}", r.management(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /facultad/delete/{id}", r.management(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerProfessors() {
	h := &ProfessorsHandler{ProfessorService: r.ProfessorService}

	r.Mux.Handle("GET /profesor", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /profesor/{id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("POST /profesor/create", http.HandlerFunc(h.HandleCreate))
	r.Mux.Handle("PUT /profesor/update/{id}", http.HandlerFunc(h.HandleUpdate))
	r.Mux.Handle("DELETE /profesor/delete/{id}", http.HandlerFunc(h.HandleDelete))
	r.Mux.Handle("POST /profesor/upload/{id}", http.HandlerFunc(h.HandleUpload))
	r.Mux.Handle("GET /profesor/imagen/{id}", http.HandlerFunc(h.HandleImage))
}

func (r *Router) registerSurveys() {
	h := &SurveysHandler{SurveyService: r.SurveyService}

	r.Mux.Handle("GET /encuesta", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /encuesta/{id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("POST /encuesta/create", http.HandlerFunc(h.HandleCreate))
	r.Mux.Handle("PUT /encuesta/update/{id}", http.HandlerFunc(h.HandleUpdate))
	r.Mux.Handle("DELETE /encuesta/delete/{id}", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerCriteria() {
	h := &CriteriaHandler{CriterionService: r.CriterionService}

	r.Mux.Handle("GET /criterios", r.management(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /criterios/{id}", r.management(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("POST /criterios/create", r.management(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /criterios/update/{id}", r.management(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /criterios/delete/{id}", r.management(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerEvaluations() {
	h := &EvaluationsHandler{EvaluationService: r.EvaluationService}

	r.Mux.Handle("GET /evaluaciones", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /evaluaciones/{id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("POST /evaluaciones/create", http.HandlerFunc(h.HandleCreate))
	r.Mux.Handle("PUT /evaluaciones/update/{id}", http.HandlerFunc(h.HandleUpdate))
	r.Mux.Handle("DELETE /evaluaciones/delete/{id}", http.HandlerFunc(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := r.store.Ping(req.Context()); err != nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "Base de datos no disponible")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
