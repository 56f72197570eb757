package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"libfront/internal/adapters/api"
	"libfront/internal/core/domain/ports"
)

// SessionCookie is the fixed per-browser key the bearer token lives
// under between requests.
const SessionCookie = "library_auth_token"

// ClientFactory derives a backend client bound to one session token.
// An empty token yields an unauthenticated client.
type ClientFactory func(token string) ports.LibraryService

// Server renders the CRUD screens. It holds no entity state of its
// own; every page is rebuilt from backend responses.
type Server struct {
	newClient ClientFactory
}

func NewServer(factory ClientFactory) *Server {
	return &Server{newClient: factory}
}

// Routes wires all pages onto a new echo instance.
func (s *Server) Routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Renderer = newRenderer()

	e.GET("/login", s.showLogin)
	e.POST("/login", s.handleLogin)
	e.POST("/logout", s.handleLogout)

	e.GET("/", s.showDashboard)

	e.GET("/books", s.listBooks)
	e.GET("/books/new", s.showBookForm)
	e.POST("/books", s.createBook)
	e.GET("/books/:id/edit", s.showBookForm)
	e.POST("/books/:id", s.updateBook)
	e.POST("/books/:id/availability", s.toggleBookAvailability)
	e.POST("/books/:id/delete", s.deleteBook)

	e.GET("/libraries", s.listLibraries)
	e.GET("/libraries/new", s.showLibraryForm)
	e.POST("/libraries", s.createLibrary)
	e.GET("/libraries/:id/edit", s.showLibraryForm)
	e.POST("/libraries/:id", s.updateLibrary)
	e.POST("/libraries/:id/delete", s.deleteLibrary)

	e.GET("/members", s.listMembers)
	e.GET("/members/new", s.showMemberForm)
	e.POST("/members", s.createMember)
	e.GET("/members/:id/edit", s.showMemberForm)
	e.POST("/members/:id", s.updateMember)
	e.POST("/members/:id/delete", s.deleteMember)

	e.GET("/loans", s.listLoans)
	e.GET("/loans/new", s.showLoanForm)
	e.POST("/loans", s.createLoan)
	e.POST("/loans/:id/return", s.returnLoan)

	return e
}

// client builds a backend client carrying this request's session token.
func (s *Server) client(c echo.Context) ports.LibraryService {
	return s.newClient(sessionToken(c))
}

func sessionToken(c echo.Context) string {
	ck, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return ck.Value
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// fail applies the shared failure policy: a 401 means the session
// expired, so the cookie is dropped and the user lands on the login
// page; anything else renders the error screen with the normalized
// message.
func (s *Server) fail(c echo.Context, err error) error {
	if api.IsUnauthorized(err) {
		clearSessionCookie(c)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	status := http.StatusInternalServerError
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	return c.Render(status, "error.html", map[string]any{
		"Title":   "Error",
		"Message": errorMessage(err),
	})
}

// errorMessage prefers the backend's normalized message over the Go
// error chain text.
func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
