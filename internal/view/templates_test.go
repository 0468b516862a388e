package view

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornecedores/cadastro/internal/shared"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestPageWithoutSessionOrCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	data := Page(req, "Home", nil)
	assert.Equal(t, "Home", data.Title)
	assert.Empty(t, data.User)
	assert.Equal(t, FirstAccess, data.LastAccess)
}

func TestPageReadsIncomingCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: shared.LastAccessCookie, Value: url.QueryEscape("19/10/2026, 14:03:05")})
	data := Page(req, "Home", nil)
	assert.Equal(t, "19/10/2026, 14:03:05", data.LastAccess)
}

func TestRenderLayout(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = engine.Render(rr, "pages/home.html", TemplateData{Title: "Home", User: "adm", LastAccess: FirstAccess})
	require.NoError(t, err)

	body := rr.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, body, "<title>Home</title>")
	assert.Contains(t, body, "Logado como: adm")
	assert.Contains(t, body, "Último acesso: Primeiro acesso")
	for _, href := range []string{`href="/"`, `href="/fornecedor"`, `href="/login"`, `href="/logout"`} {
		assert.Contains(t, body, href)
	}
}

func TestRenderAnonymous(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, engine.Render(rr, "pages/login.html", TemplateData{Title: "Login", LastAccess: FirstAccess}))
	body := rr.Body.String()
	assert.Contains(t, body, "Não autenticado")
	assert.Contains(t, body, `name="user"`)
	assert.Contains(t, body, `name="pass"`)
}

func TestRenderEscapesUserInput(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	data := TemplateData{Title: "Erro", LastAccess: FirstAccess, Data: map[string]any{"Missing": []string{"<script>"}}}
	require.NoError(t, engine.Render(rr, "pages/supplier_invalid.html", data))
	body := rr.Body.String()
	assert.False(t, strings.Contains(body, "<li><script></li>"))
	assert.Contains(t, body, "<li>&lt;script&gt;</li>")
}

func TestRenderMarksCurrentNavLink(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	data := Page(req, "Login", nil)
	assert.Equal(t, "/login", data.CurrentPath)

	rr := httptest.NewRecorder()
	require.NoError(t, engine.Render(rr, "pages/login.html", data))
	body := rr.Body.String()
	assert.Contains(t, body, `<a class="nav-link active" href="/login">Login</a>`)
	assert.Contains(t, body, `<a class="nav-link" href="/">Inicio</a>`)
	assert.Equal(t, 1, strings.Count(body, "nav-link active"))
}
