package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/pkg/httpx"
)

type FacultiesHandler struct {
	FacultyService *service.FacultyService
}

type facultyRequest struct {
	Name string `json:"nombre"`
	Head string `json:"responsable"`
}

func (req *facultyRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Head = strings.TrimSpace(req.Head)
	switch {
	case req.Name == "":
		return "El nombre es obligatorio"
	case req.Head == "":
		return "El responsable es obligatorio"
	default:
		return ""
	}
}

// HandleGet handles GET /facultad/{id}
//
//	@Summary	Obtener facultad
//	@Tags		Facultades
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"ID de la facultad"
//	@Success	200	{object}	domain.Faculty
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/facultad/{id} [get]
func (h *FacultiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	f, err := h.FacultyService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Facultad no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, f)
}

// HandleList handles GET /facultad
//
//	@Summary	Listar facultades
//	@Tags		Facultades
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	domain.Faculty
//	@Router		/facultad [get]
func (h *FacultiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.FacultyService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Facultad no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /facultad/create
//
//	@Summary	Crear facultad
//	@Tags		Facultades
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		facultyRequest	true	"Facultad nueva"
//	@Success	201		{object}	domain.Faculty
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/facultad/create [post]
func (h *FacultiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req facultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	f, err := h.FacultyService.Create(r.Context(), req.Name, req.Head)
	if err != nil {
		writeServiceError(w, r, err, "Facultad no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, f)
}

// HandleUpdate handles PUT /facultad/update/{id}
//
//	@Summary	Actualizar facultad
//	@Tags		Facultades
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"ID de la facultad"
//	@Param		request	body		facultyRequest	true	"Datos nuevos"
//	@Success	200		{object}	domain.Faculty
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/facultad/update/{id} [put]
func (h *FacultiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req facultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	f, err := h.FacultyService.Update(r.Context(), r.PathValue("id"), req.Name, req.Head)
	if err != nil {
		writeServiceError(w, r, err, "Facultad no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, f)
}

// HandleDelete handles DELETE /facultad/delete/{id}
//
//	@Summary	Eliminar facultad
//	@Tags		Facultades
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"ID de la facultad"
//	@Success	200	{object}	map[string]any
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/facultad/delete/{id} [delete]
func (h *FacultiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.FacultyService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Facultad no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Facultad eliminada correctamente",
	})
}
