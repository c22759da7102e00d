package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"go-waitlist-api/common"
	"go-waitlist-api/model"
	"go-waitlist-api/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the view model behind the landing template. State is the only
// switch between the form and the success panel, so the template cannot
// render an illegal mix of the two.
type PageData struct {
	State  model.State
	Role   model.Role
	Name   string
	Email  string
	Errors []common.FieldError
	Notice string
}

func (p PageData) Submitted() bool {
	return p.State == model.StateSubmitted
}

func (p PageData) RoleIs(value string) bool {
	return string(p.Role) == value
}

// FieldError returns the inline message for a field, or "" when the field
// validated cleanly.
func (p PageData) FieldError(field string) string {
	for _, fe := range p.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// PageHandler serves the landing page and the browser form flow.
type PageHandler struct {
	service *service.SignupService
	tmpl    *template.Template
}

func NewPageHandler(service *service.SignupService) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse landing templates: %w", err)
	}
	return &PageHandler{service: service, tmpl: tmpl}, nil
}

// Landing renders the waitlist page in its initial form state, with the
// expert role pre-selected. Every fresh page load starts here; nothing
// carries over from earlier submissions.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.URL.Path != "/" {
		return common.NewAppError(http.StatusNotFound, "Page not found", nil)
	}
	if r.Method != http.MethodGet {
		return common.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil)
	}

	return h.render(w, http.StatusOK, PageData{State: model.StateForm, Role: model.DefaultRole})
}

// Submit handles the browser form post. Validation failures re-render the
// form state with inline messages and the entered values preserved. A valid
// signup always resolves to the success panel; if the outbound call failed,
// the panel carries the simulated-delivery notice.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.Method != http.MethodPost {
		return common.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil)
	}
	if err := r.ParseForm(); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid form data", err)
	}

	req := model.SignupRequest{
		Name:  strings.TrimSpace(r.PostFormValue("name")),
		Email: strings.TrimSpace(r.PostFormValue("email")),
		Role:  model.ParseRole(r.PostFormValue("role")),
	}

	if fieldErrors := common.ValidateStruct(&req); len(fieldErrors) > 0 {
		return h.render(w, http.StatusUnprocessableEntity, PageData{
			State:  model.StateForm,
			Role:   req.Role,
			Name:   req.Name,
			Email:  req.Email,
			Errors: fieldErrors,
		})
	}

	data := PageData{State: model.StateSubmitted, Role: req.Role}
	if err := h.service.Submit(r.Context(), req); err != nil {
		data.Notice = model.SimulatedNotice
	}
	return h.render(w, http.StatusOK, data)
}

// render buffers the template so a render failure can still produce a clean
// error response instead of a half-written page.
func (h *PageHandler) render(w http.ResponseWriter, status int, data PageData) *common.AppError {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "landing.html", data); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not render page", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
	return nil
}
