package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/pkg/httpx"
	"github.com/acadeval/encuestas/pkg/slogx"
)

// AuthHandler serves login, refresh, session and logout.
type AuthHandler struct {
	AuthService *service.AuthService
}

type loginRequest struct {
	Username string `json:"nombre_usuario"`
	Password string `json:"contrasena"`
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Iniciar sesión
//	@Description	Valida usuario y contraseña y entrega un par de tokens JWT.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest		true	"Credenciales"
//	@Success		200		{object}	domain.TokenPair	"Tokens de acceso y refresco"
//	@Failure		400		{object}	httpx.ErrorBody		"Cuerpo inválido"
//	@Failure		401		{object}	httpx.ErrorBody		"Credenciales inválidas"
//	@Router			/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Usuario y contraseña son obligatorios")
		return
	}

	pair, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}

	slogx.FromContext(ctx).Info("login", "username", req.Username)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// HandleRefresh handles POST /auth/refreshToken
//
//	@Summary		Renovar token de acceso
//	@Description	Valida el token de refresco y entrega un token de acceso nuevo.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		refreshRequest	true	"Token de refresco"
//	@Success		200		{object}	map[string]string
//	@Failure		401		{object}	httpx.ErrorBody	"Token expirado o inválido"
//	@Failure		404		{object}	httpx.ErrorBody	"Usuario no encontrado"
//	@Router			/auth/refreshToken [post]
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Falta el token de refresco")
		return
	}

	access, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"accessToken": access})
}

type sessionResponse struct {
	Authenticated bool         `json:"autenticado"`
	User          *domain.User `json:"usuario,omitempty"`
}

// HandleSession handles GET /session
//
// The route sits behind the management role gate, which already rejects a
// missing or invalid bearer token. The empty-identity answer stays for a
// request that somehow reaches the handler without a header.
//
//	@Summary		Sesión actual
//	@Description	Devuelve la identidad del usuario autenticado.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	sessionResponse
//	@Failure		401	{object}	httpx.ErrorBody	"No autenticado o sin permisos"
//	@Failure		403	{object}	httpx.ErrorBody	"Token rechazado"
//	@Router			/session [get]
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		httpx.WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

	claims, err := h.AuthService.Tokens.VerifyAccess(raw)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "Token inválido")
		return
	}

	u, err := h.AuthService.Identity(ctx, claims.UserID())
	if err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: true, User: &u})
}

// HandleLogout handles POST /auth/logout
//
// Logout is advisory. Tokens are not stored server-side, so there is nothing
// to revoke; the client discards its copy and the tokens age out on their
// own TTLs.
//
//	@Summary		Cerrar sesión
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	map[string]any
//	@Router			/auth/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	slogx.FromContext(r.Context()).Info("logout",
		"user_id", httpx.UserIDFromContext(r.Context()))

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Sesión cerrada correctamente",
	})
}
