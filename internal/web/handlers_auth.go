package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (s *Server) showLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", map[string]any{
		"Title": "Sign in",
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	if email == "" || password == "" {
		return c.Render(http.StatusBadRequest, "login.html", map[string]any{
			"Title": "Sign in",
			"Error": "Email and password are required",
			"Email": email,
		})
	}

	tok, err := s.client(c).Login(c.Request().Context(), email, password)
	if err != nil {
		return c.Render(http.StatusUnauthorized, "login.html", map[string]any{
			"Title": "Sign in",
			"Error": errorMessage(err),
			"Email": email,
		})
	}

	setSessionCookie(c, tok)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleLogout(c echo.Context) error {
	// Best effort: the cookie is gone either way.
	_ = s.client(c).Logout()
	clearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
