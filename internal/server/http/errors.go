package http

import (
	"errors"
	"net/http"

	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/httpx"
	"github.com/acadeval/encuestas/pkg/slogx"
)

// writeServiceError maps service and store errors onto the public error
// envelope. notFoundMsg is the entity-specific 404 message; anything
// unrecognized becomes a logged 500 with a generic body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Credenciales inválidas")
	case errors.Is(err, service.ErrTokenExpired):
		httpx.WriteError(w, http.StatusUnauthorized, "Sesión expirada, inicie sesión nuevamente")
	case errors.Is(err, service.ErrInvalidToken):
		httpx.WriteError(w, http.StatusUnauthorized, "Token inválido")
	case errors.Is(err, service.ErrInvalidCode):
		httpx.WriteError(w, http.StatusUnauthorized, "Código de verificación inválido")
	case errors.Is(err, service.ErrNotEnabled), errors.Is(err, service.ErrNotEnrolled):
		httpx.WriteError(w, http.StatusBadRequest, "La autenticación de dos factores no está habilitada")
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteError(w, http.StatusBadRequest, "El nombre de usuario ya está en uso")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, notFoundMsg)
	default:
		slogx.FromContext(r.Context()).Error("unhandled error",
			"method", r.Method, "path", r.URL.Path, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
	}
}
