package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fornecedores/cadastro/internal/shared"
	"github.com/fornecedores/cadastro/internal/view"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger         *slog.Logger
	service        *Service
	templates      *view.Engine
	sessionManager *shared.SessionManager
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, sessions *shared.SessionManager) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:         logger,
		service:        service,
		templates:      templates,
		sessionManager: sessions,
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/login", h.showLogin)
	r.Post("/login", h.handleLogin)
	r.Get("/logout", h.handleLogout)
}

func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/login.html", "Login")
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("user")
	password := r.PostFormValue("pass")

	if err := h.service.Authenticate(r.Context(), username, password); err != nil {
		h.render(w, r, "pages/login_failed.html", "Falha ao realizar login")
		return
	}

	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		h.logger.Error("login", slog.Any("error", shared.ErrSessionMissing))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	sess.SetUser(username)
	if err := h.sessionManager.Commit(r.Context(), w, r, sess); err != nil {
		h.logger.Error("persist login session", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.render(w, r, "pages/login_success.html", "Login")
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessionManager.Destroy(shared.SessionFromContext(r.Context()))
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, template, title string) {
	if err := h.templates.Render(w, template, view.Page(r, title, nil)); err != nil {
		h.logger.Error("render template", slog.Any("error", err), slog.String("template", template))
	}
}
