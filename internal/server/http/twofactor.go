package http

import (
	"encoding/json"
	"net/http"

	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/pkg/httpx"
)

// TwoFactorHandler serves the 2FA enrollment and validation endpoints. All
// three routes sit behind RequireRoles, so the user id always comes from the
// verified access token.
type TwoFactorHandler struct {
	TwoFactorService *service.TwoFactorService
}

type twoFactorCodeRequest struct {
	Code string `json:"codigo"`
}

// HandleGenerate handles POST /auth/2fa/generate
//
//	@Summary		Generar secreto 2FA
//	@Description	Genera un secreto TOTP nuevo y lo devuelve junto a un código QR. Reinicia cualquier inscripción previa.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.TwoFactorEnrollment
//	@Failure		404	{object}	httpx.ErrorBody	"Usuario no encontrado"
//	@Router			/auth/2fa/generate [post]
func (h *TwoFactorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	enrollment, err := h.TwoFactorService.GenerateSecret(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, enrollment)
}

// HandleVerify handles POST /auth/2fa/verify
//
//	@Summary		Confirmar inscripción 2FA
//	@Description	Verifica el primer código de la aplicación autenticadora y habilita 2FA.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		twoFactorCodeRequest	true	"Código TOTP"
//	@Success		200		{object}	map[string]any
//	@Failure		401		{object}	httpx.ErrorBody	"Código inválido"
//	@Router			/auth/2fa/verify [post]
func (h *TwoFactorHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	var req twoFactorCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Falta el código de verificación")
		return
	}

	if err := h.TwoFactorService.ConfirmEnrollment(r.Context(), userID, req.Code); err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Autenticación de dos factores habilitada",
	})
}

// HandleValidate handles POST /auth/2fa/validate
//
//	@Summary		Validar código 2FA
//	@Description	Valida un código TOTP de inicio de sesión. Solo funciona con la inscripción confirmada.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		twoFactorCodeRequest	true	"Código TOTP"
//	@Success		200		{object}	map[string]bool
//	@Failure		400		{object}	httpx.ErrorBody	"2FA no habilitada"
//	@Failure		401		{object}	httpx.ErrorBody	"Código inválido"
//	@Router			/auth/2fa/validate [post]
func (h *TwoFactorHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromContext(r.Context())

	var req twoFactorCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Falta el código de verificación")
		return
	}

	if err := h.TwoFactorService.ValidateCode(r.Context(), userID, req.Code); err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
