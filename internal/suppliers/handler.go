package suppliers

import (
	"log/slog"
	"net/http"

	"github.com/fornecedores/cadastro/internal/view"
)

// Handler wires HTTP endpoints for supplier registration.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
	guard     func(http.Handler) http.Handler
}

// NewHandler constructs a Handler. guard protects every route.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, guard func(http.Handler) http.Handler) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, templates: templates, guard: guard}
}

// Form renders the registration form followed by the current table.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/supplier_form.html", "Fornecedor", map[string]any{
		"Suppliers": h.service.List(),
	})
}

// Create validates and stores a submitted supplier.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	missing, err := h.service.Register(r.Context(), FromForm(r.PostFormValue))
	if err != nil {
		h.logger.Error("register supplier", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if len(missing) > 0 {
		h.render(w, r, "pages/supplier_invalid.html", "Erro no cadastro", map[string]any{
			"Missing": missing,
		})
		return
	}
	h.render(w, r, "pages/supplier_created.html", "Sucesso", nil)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, template, title string, data map[string]any) {
	if err := h.templates.Render(w, template, view.Page(r, title, data)); err != nil {
		h.logger.Error("render template", slog.Any("error", err), slog.String("template", template))
	}
}
