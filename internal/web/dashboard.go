package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"libfront/internal/core/domain/models"
)

// showDashboard fans out the four list calls in parallel and derives
// the display statistics locally from the results.
func (s *Server) showDashboard(c echo.Context) error {
	cl := s.client(c)
	g, ctx := errgroup.WithContext(c.Request().Context())

	var (
		books     []models.Book
		libraries []models.Library
		members   []models.Member
		loans     []models.Loan
	)
	g.Go(func() error {
		var err error
		books, err = cl.ListBooks(ctx, models.BookFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		libraries, err = cl.ListLibraries(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		members, err = cl.ListMembers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		loans, err = cl.ListLoans(ctx, models.LoanFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail(c, err)
	}

	return c.Render(http.StatusOK, "dashboard.html", map[string]any{
		"Title": "Dashboard",
		"Stats": models.ComputeStats(books, libraries, members, loans),
	})
}
