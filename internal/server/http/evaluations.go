package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/pkg/httpx"
)

type EvaluationsHandler struct {
	EvaluationService *service.EvaluationService
}

type evaluationRequest struct {
	Kind        string  `json:"tipo"`
	CriterionID *string `json:"criterioId"`
}

func (req *evaluationRequest) validate() string {
	req.Kind = strings.TrimSpace(req.Kind)
	if req.Kind == "" {
		return "El tipo es obligatorio"
	}
	return ""
}

// HandleGet handles GET /evaluaciones/{id}
//
//	@Summary	Obtener evaluación
//	@Tags		Evaluaciones
//	@Produce	json
//	@Param		id	path		string	true	"ID de la evaluación"
//	@Success	200	{object}	domain.Evaluation
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/evaluaciones/{id} [get]
func (h *EvaluationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.EvaluationService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Evaluación no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}

// HandleList handles GET /evaluaciones
//
//	@Summary	Listar evaluaciones
//	@Tags		Evaluaciones
//	@Produce	json
//	@Success	200	{array}	domain.Evaluation
//	@Router		/evaluaciones [get]
func (h *EvaluationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.EvaluationService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Evaluación no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /evaluaciones/create
//
//	@Summary	Crear evaluación
//	@Tags		Evaluaciones
//	@Accept		json
//	@Produce	json
//	@Param		request	body		evaluationRequest	true	"Evaluación nueva"
//	@Success	201		{object}	domain.Evaluation
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/evaluaciones/create [post]
func (h *EvaluationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	e, err := h.EvaluationService.Create(r.Context(), req.Kind, req.CriterionID)
	if err != nil {
		writeServiceError(w, r, err, "Evaluación no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, e)
}

// HandleUpdate handles PUT /evaluaciones/update/{id}
//
//	@Summary	Actualizar evaluación
//	@Tags		Evaluaciones
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"ID de la evaluación"
//	@Param		request	body		evaluationRequest	true	"Datos nuevos"
//	@Success	200		{object}	domain.Evaluation
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/evaluaciones/update/{id} [put]
func (h *EvaluationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	e, err := h.EvaluationService.Update(r.Context(), r.PathValue("id"), req.Kind, req.CriterionID)
	if err != nil {
		writeServiceError(w, r, err, "Evaluación no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}

// HandleDelete handles DELETE /evaluaciones/delete/{id}
//
//	@Summary	Eliminar evaluación
//	@Tags		Evaluaciones
//	@Produce	json
//	@Param		id	path		string	true	"ID de la evaluación"
//	@Success	200	{object}	map[string]any
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/evaluaciones/delete/{id} [delete]
func (h *EvaluationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.EvaluationService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Evaluación no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Evaluación eliminada correctamente",
	})
}
