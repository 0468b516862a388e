package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/fornecedores/cadastro/internal/shared"
	"github.com/fornecedores/cadastro/internal/view"
)

// Guard short-circuits requests that do not carry an authenticated session.
type Guard struct {
	Templates *view.Engine
	Logger    *slog.Logger
}

// RequireLogin renders the access-denied page instead of next when the session
// has no user. The denial is a normal 200 page linking to the login form.
func (g Guard) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if strings.TrimSpace(sess.User()) != "" {
			next.ServeHTTP(w, r)
			return
		}
		if err := g.Templates.Render(w, "pages/access_denied.html", view.Page(r, "Acesso negado", nil)); err != nil && g.Logger != nil {
			g.Logger.Error("render access denied", slog.Any("error", err))
		}
	})
}
