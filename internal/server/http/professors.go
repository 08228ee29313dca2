package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/acadeval/encuestas/internal/server/service"
	"github.com/acadeval/encuestas/internal/server/storage"
	"github.com/acadeval/encuestas/pkg/httpx"
)

// maxImageSize caps professor image uploads at 5 MiB.
const maxImageSize = 5 << 20

type ProfessorsHandler struct {
	ProfessorService *service.ProfessorService
}

type professorRequest struct {
	Name      string  `json:"nombre"`
	Sex       string  `json:"sexo"`
	Age       string  `json:"edad"`
	Subject   string  `json:"asignatura"`
	FacultyID *string `json:"facultadId"`
}

func (req *professorRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Sex = strings.TrimSpace(req.Sex)
	req.Age = strings.TrimSpace(req.Age)
	req.Subject = strings.TrimSpace(req.Subject)
	switch {
	case req.Name == "":
		return "El nombre es obligatorio"
	case req.Sex == "":
		return "El sexo es obligatorio"
	case req.Age == "":
		return "La edad es obligatoria"
	case req.Subject == "":
		return "La asignatura es obligatoria"
	default:
		return ""
	}
}

// HandleGet handles GET /profesor/{id}
//
//	@Summary	Obtener profesor
//	@Tags		Profesores
//	@Produce	json
//	@Param		id	path		string	true	"ID del profesor"
//	@Success	200	{object}	domain.Professor
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/profesor/{id} [get]
func (h *ProfessorsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProfessorService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Profesor no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleList handles GET /profesor
//
//	@Summary	Listar profesores
//	@Tags		Profesores
//	@Produce	json
//	@Success	200	{array}	domain.Professor
//	@Router		/profesor [get]
func (h *ProfessorsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.ProfessorService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Profesor no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /profesor/create
//
//	@Summary	Crear profesor
//	@Tags		Profesores
//	@Accept		json
//	@Produce	json
//	@Param		request	body		professorRequest	true	"Profesor nuevo"
//	@Success	201		{object}	domain.Professor
//	@Failure	400		{object}	httpx.ErrorBody
//	@Router		/profesor/create [post]
func (h *ProfessorsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req professorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	p, err := h.ProfessorService.Create(r.Context(), req.Name, req.Sex, req.Age, req.Subject, req.FacultyID)
	if err != nil {
		writeServiceError(w, r, err, "Profesor no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

// HandleUpdate handles PUT /profesor/update/{id}
//
//	@Summary	Actualizar profesor
//	@Tags		Profesores
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"ID del profesor"
//	@Param		request	body		professorRequest	true	"Datos nuevos"
//	@Success	200		{object}	domain.Professor
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/profesor/update/{id} [put]
func (h *ProfessorsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req professorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	p, err := h.ProfessorService.Update(r.Context(), r.PathValue("id"), req.Name, req.Sex, req.Age, req.Subject, req.FacultyID)
	if err != nil {
		writeServiceError(w, r, err, "Profesor no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /profesor/delete/{id}
//
//	@Summary	Eliminar profesor
//	@Tags		Profesores
//	@Produce	json
//	@Param		id	path		string	true	"ID del profesor"
//	@Success	200	{object}	map[string]any
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/profesor/delete/{id} [delete]
func (h *ProfessorsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ProfessorService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "Profesor no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Profesor eliminado correctamente",
	})
}

// HandleUpload handles POST /profesor/upload/{id}
//
// Multipart upload; the file part must be named "imagen".
//
//	@Summary	Subir imagen de profesor
//	@Tags		Profesores
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		string	true	"ID del profesor"
//	@Param		imagen	formData	file	true	"Imagen"
//	@Success	200		{object}	domain.Professor
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/profesor/upload/{id} [post]
func (h *ProfessorsHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "La imagen supera el tamaño máximo permitido")
		return
	}

	file, header, err := r.FormFile("imagen")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Falta el archivo de imagen")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httpx.WriteError(w, http.StatusBadRequest, "El archivo debe ser una imagen")
		return
	}

	p, err := h.ProfessorService.AttachImage(r.Context(), r.PathValue("id"),
		header.Filename, contentType, file, header.Size)
	if err != nil {
		writeServiceError(w, r, err, "Profesor no encontrado")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleImage handles GET /profesor/imagen/{id}
//
//	@Summary	Descargar imagen de profesor
//	@Tags		Profesores
//	@Produce	png
//	@Param		id	path	string	true	"ID del profesor"
//	@Success	200	{file}	binary
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/profesor/imagen/{id} [get]
func (h *ProfessorsHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	rc, err := h.ProfessorService.OpenImage(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "El profesor no tiene imagen")
			return
		}
		writeServiceError(w, r, err, "Profesor no encontrado")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = io.Copy(w, rc)
}
