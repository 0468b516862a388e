package auth_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornecedores/cadastro/internal/auth"
	"github.com/fornecedores/cadastro/internal/shared"
	"github.com/fornecedores/cadastro/internal/view"
)

type authFixture struct {
	router   http.Handler
	sessions *shared.SessionManager
	redis    *miniredis.Miniredis
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })
	sessionManager := shared.NewSessionManager(redisClient, "test_session", "secret", time.Hour, false)
	templates, err := view.NewEngine()
	require.NoError(t, err)

	verifier := auth.FixedVerifier{Username: auth.DefaultUsername, Password: auth.DefaultPassword}
	handler := auth.NewHandler(nil, auth.NewService(verifier, nil), templates, sessionManager)
	guard := auth.Guard{Templates: templates}

	r := chi.NewRouter()
	r.Use(sessionManager.Middleware(nil))
	handler.MountRoutes(r)
	r.With(guard.RequireLogin).Get("/fornecedor", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("protected content"))
	})
	return &authFixture{router: r, sessions: sessionManager, redis: mr}
}

func (f *authFixture) serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	res := httptest.NewRecorder()
	f.router.ServeHTTP(res, req)
	return res
}

func (f *authFixture) sessionCookie(res *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range res.Result().Cookies() {
		if c.Name == f.sessions.CookieName() {
			return c
		}
	}
	return nil
}

func loginRequest(user, pass string) *http.Request {
	form := url.Values{"user": {user}, "pass": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginPage(t *testing.T) {
	f := newAuthFixture(t)

	res := f.serve(t, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, `<form method="POST"`)
	assert.Contains(t, body, `action="/login"`)
	assert.Contains(t, body, "Não autenticado")
}

func TestLoginSuccessAuthenticatesSession(t *testing.T) {
	f := newAuthFixture(t)

	res := f.serve(t, loginRequest("adm", "123456"))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "Login efetuado com sucesso!")
	assert.Contains(t, res.Body.String(), "Logado como: adm")

	cookie := f.sessionCookie(res)
	require.NotNil(t, cookie)
	sessionCookies := 0
	for _, c := range res.Result().Cookies() {
		if c.Name == f.sessions.CookieName() {
			sessionCookies++
		}
	}
	assert.Equal(t, 1, sessionCookies)

	next := httptest.NewRequest(http.MethodGet, "/fornecedor", nil)
	next.AddCookie(cookie)
	protected := f.serve(t, next)
	assert.Equal(t, http.StatusOK, protected.Code)
	assert.Equal(t, "protected content", protected.Body.String())
}

func TestLoginFailsWhenSessionCannotBeSaved(t *testing.T) {
	f := newAuthFixture(t)
	f.redis.Close()

	res := f.serve(t, loginRequest("adm", "123456"))
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.NotContains(t, res.Body.String(), "Login efetuado com sucesso!")
	assert.Nil(t, f.sessionCookie(res))
}

func TestLoginInvalidCredentials(t *testing.T) {
	cases := []struct{ user, pass string }{
		{"adm", "wrong"},
		{"admin", "123456"},
		{"ADM", "123456"},
		{"adm ", "123456"},
		{"", ""},
	}
	for _, tc := range cases {
		f := newAuthFixture(t)
		res := f.serve(t, loginRequest(tc.user, tc.pass))
		require.Equal(t, http.StatusOK, res.Code)
		body := res.Body.String()
		assert.Contains(t, body, "Usuário ou senha inválidos.")
		assert.Contains(t, body, `href="/login"`)
		assert.Nil(t, f.sessionCookie(res), "user %q", tc.user)
		assert.Empty(t, f.redis.Keys())
	}
}

func TestGuardDeniesAnonymous(t *testing.T) {
	f := newAuthFixture(t)

	res := f.serve(t, httptest.NewRequest(http.MethodGet, "/fornecedor", nil))
	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	assert.Contains(t, body, "Você precisa fazer login para acessar esta página.")
	assert.Contains(t, body, `href="/login"`)
	assert.NotContains(t, body, "protected content")
}

func TestLogoutDestroysSession(t *testing.T) {
	f := newAuthFixture(t)

	login := f.serve(t, loginRequest("adm", "123456"))
	cookie := f.sessionCookie(login)
	require.NotNil(t, cookie)

	logoutReq := httptest.NewRequest(http.MethodGet, "/logout", nil)
	logoutReq.AddCookie(cookie)
	logout := f.serve(t, logoutReq)
	assert.Equal(t, http.StatusFound, logout.Code)
	assert.Equal(t, "/login", logout.Header().Get("Location"))
	cleared := f.sessionCookie(logout)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
	assert.Empty(t, f.redis.Keys())

	again := httptest.NewRequest(http.MethodGet, "/fornecedor", nil)
	again.AddCookie(cookie)
	denied := f.serve(t, again)
	assert.Contains(t, denied.Body.String(), "Você precisa fazer login")
}

func TestLogoutWithoutSessionStillRedirects(t *testing.T) {
	f := newAuthFixture(t)

	res := f.serve(t, httptest.NewRequest(http.MethodGet, "/logout", nil))
	assert.Equal(t, http.StatusFound, res.Code)
	assert.Equal(t, "/login", res.Header().Get("Location"))
}
