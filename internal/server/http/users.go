package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

type userRequest struct {
	Username string `json:"nombre_usuario"`
	Password string `json:"contrasena"`
	Role     string `json:"rol"`
}

func (req *userRequest) validate() string {
	req.Username = strings.TrimSpace(req.Username)
	req.Role = strings.TrimSpace(req.Role)
	switch {
	case req.Username == "":
		return "El nombre de usuario es obligatorio"
	case req.Password == "":
		return "La contraseña es obligatoria"
	case !domain.Role(req.Role).Valid():
		return "Rol desconocido"
	default:
		return ""
	}
}

// HandleGet handles GET /usuarios/{id}
//
//	@Summary	Obtener usuario
//	@Tags		Usuarios
//	@Produce	json
//	@Param		id	path		string	true	"ID del usuario"
//	@Success	200	{object}	domain.User
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/usuarios/{id} [get]
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// HandleList handles GET /usuarios
//
//	@Summary	Listar usuarios
//	@Tags		Usuarios
//	@Produce	json
//	@Success	200	{array}	domain.User
//	@Router		/usuarios [get]
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /usuarios/create
//
//	@Summary	Crear usuario
//	@Tags		Usuarios
//	@Accept		json
//	@Produce	json
//	@Param		request	body		userRequest	true	"Usuario nuevo"
//	@Success	201		{object}	domain.User
//	@Failure	400		{object}	httpx.ErrorBody	"Validación o nombre en uso"
//	@Router		/usuarios/create [post]
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	u, err := h.UserService.Create(r.Context(), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

// HandleUpdate handles PUT /usuarios/update/{id}
//
//	@Summary	Actualizar usuario
//	@Tags		Usuarios
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"ID del usuario"
//	@Param		request	body		userRequest	true	"Datos nuevos"
//	@Success	200		{object}	domain.User
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/usuarios/update/{id} [put]
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	u, err := h.UserService.Update(r.Context(), r.PathValue("id"), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// HandleDelete handles DELETE /usuarios/delete/{id}
//
//	@Summary	Eliminar usuario
//	@Tags		Usuarios
//	@Produce	json
//	@Param		id	path		string	true	"ID del usuario"
//	@Success	200	{object}	map[string]any
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/usuarios/delete/{id} [delete]
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Usuario no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Usuario eliminado correctamente",
	})
}
