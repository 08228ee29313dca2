package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/pkg/httpx"
)

type SurveysHandler struct {
	SurveyService *service.SurveyService
}

type surveyRequest struct {
	Name   string  `json:"nombre"`
	UserID *string `json:"usuarioId"`
}

func (req *surveyRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "El nombre es obligatorio"
	}
	return ""
}

// HandleGet handles GET /encuesta/{id}
//
//	@Summary	Obtener encuesta
//	@Tags		Encuestas
//	@Produce	json
//	@Param		id	path		string	true	"ID de la encuesta"
//	@Success	200	{object}	domain.Survey
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/encuesta/{id} [get]
func (h *SurveysHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, err := h.SurveyService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Encuesta no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, s)
}

// HandleList handles GET /encuesta
//
//	@Summary	Listar encuestas
//	@Tags		Encuestas
//	@Produce	json
//	@Success	200	{array}	domain.Survey
//	@Router		/encuesta [get]
func (h *SurveysHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.SurveyService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Encuesta no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /encuesta/create
//
//	@Summary	Crear encuesta
//	@Tags		Encuestas
//	@Accept		json
//	@Produce	json
//	@Param		request	body		surveyRequest	true	"Encuesta nueva"
//	@Success	201		{object}	domain.Survey
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/encuesta/create [post]
func (h *SurveysHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req surveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	s, err := h.SurveyService.Create(r.Context(), req.Name, req.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Encuesta no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, s)
}

// HandleUpdate handles PUT /encuesta/update/{id}
//
//	@Summary	Actualizar encuesta
//	@Tags		Encuestas
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"ID de la encuesta"
//	@Param		request	body		surveyRequest	true	"Datos nuevos"
//	@Success	200		{object}	domain.Survey
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/encuesta/update/{id} [put]
func (h *SurveysHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req surveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	s, err := h.SurveyService.Update(r.Context(), r.PathValue("id"), req.Name, req.UserID)
	if err != nil {
		writeServiceError(w, r, err, "Encuesta no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, s)
}

// HandleDelete handles DELETE /encuesta/delete/{id}
//
//	@Summary	Eliminar encuesta
//	@Tags		Encuestas
//	@Produce	json
//	@Param		id	path		string	true	"ID de la encuesta"
//	@Success	200	{object}	map[string]any
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/encuesta/delete/{id} [delete]
func (h *SurveysHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.SurveyService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Encuesta no encontrada")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Encuesta eliminada correctamente",
	})
}
