package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/pkg/httpx"
)

type CriteriaHandler struct {
	CriterionService *service.CriterionService
}

type criterionRequest struct {
	Name     string  `json:"nombre"`
	SurveyID *string `json:"encuestaId"`
}

func (req *criterionRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "El nombre es obligatorio"
	}
	return ""
}

// HandleGet handles GET /criterios/{id}
//
//	@Summary	Obtener criterio
//	@Tags		Criterios
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"ID del criterio"
//	@Success	200	{object}	domain.Criterion
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/criterios/{id} [get]
func (h *CriteriaHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.CriterionService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Criterio no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

// HandleList handles GET /criterios
//
//	@Summary	Listar criterios
//	@Tags		Criterios
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	domain.Criterion
//	@Router		/criterios [get]
func (h *CriteriaHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.CriterionService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Criterio no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /criterios/create
//
//	@Summary	Crear criterio
//	@Tags		Criterios
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		criterionRequest	true	"Criterio nuevo"
//	@Success	201		{object}	domain.Criterion
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/criterios/create [post]
func (h *CriteriaHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req criterionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	c, err := h.CriterionService.Create(r.Context(), req.Name, req.SurveyID)
	if err != nil {
		writeServiceError(w, r, err, "Criterio no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

// HandleUpdate handles PUT /criterios/update/{id}
//
//	@Summary	Actualizar criterio
//	@Tags		Criterios
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"ID del criterio"
//	@Param		request	body		criterionRequest	true	"Datos nuevos"
//	@Success	200		{object}	domain.Criterion
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/criterios/update/{id} [put]
func (h *CriteriaHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req criterionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	c, err := h.CriterionService.Update(r.Context(), r.PathValue("id"), req.Name, req.SurveyID)
	if err != nil {
		writeServiceError(w, r, err, "Criterio no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

// HandleDelete handles DELETE /criterios/delete/{id}
//
//	@Summary	Eliminar criterio
//	@Tags		Criterios
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"ID del criterio"
//	@Success	200	{object}	map[string]any
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/criterios/delete/{id} [delete]
func (h *CriteriaHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CriterionService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Criterio no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Criterio eliminado correctamente",
	})
}
