package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"libfront/internal/core/domain/models"
	"libfront/internal/core/domain/ports"
)

// loanRow is a loan enriched with display names resolved from the
// related entities.
type loanRow struct {
	models.Loan
	BookTitle  string
	MemberName string
}

func (s *Server) listLoans(c echo.Context) error {
	filter := models.LoanFilter{
		BookID:     strings.TrimSpace(c.QueryParam("bookId")),
		MemberID:   strings.TrimSpace(c.QueryParam("memberId")),
		ActiveOnly: c.QueryParam("activeOnly") == "true",
	}

	cl := s.client(c)
	ctx := c.Request().Context()

	loans, err := cl.ListLoans(ctx, filter)
	if err != nil {
		return s.fail(c, err)
	}

	rows, err := enrichLoans(c, cl, loans)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Render(http.StatusOK, "loans_list.html", map[string]any{
		"Title":  "Loans",
		"Loans":  rows,
		"Filter": filter,
	})
}

// enrichLoans resolves book titles and member names for display. The
// backend may embed the related records; when it does not, both lists
// are fetched in parallel and joined locally by id.
func enrichLoans(c echo.Context, cl ports.LibraryService, loans []models.Loan) ([]loanRow, error) {
	needsJoin := false
	for _, l := range loans {
		if l.Book == nil || l.Member == nil {
			needsJoin = true
			break
		}
	}

	bookTitles := map[string]string{}
	memberNames := map[string]string{}

	if needsJoin {
		g, ctx := errgroup.WithContext(c.Request().Context())

		var books []models.Book
		var members []models.Member
		g.Go(func() error {
			var err error
			books, err = cl.ListBooks(ctx, models.BookFilter{})
			return err
		})
		g.Go(func() error {
			var err error
			members, err = cl.ListMembers(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, b := range books {
			bookTitles[b.ID] = b.Title
		}
		for _, m := range members {
			memberNames[m.ID] = m.Name
		}
	}

	rows := make([]loanRow, 0, len(loans))
	for _, l := range loans {
		row := loanRow{Loan: l}
		if l.Book != nil {
			row.BookTitle = l.Book.Title
		} else {
			row.BookTitle = bookTitles[l.BookID]
		}
		if l.Member != nil {
			row.MemberName = l.Member.Name
		} else {
			row.MemberName = memberNames[l.MemberID]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// showLoanForm needs the available books and the member roster for the
// select boxes; both are fetched in parallel.
func (s *Server) showLoanForm(c echo.Context) error {
	cl := s.client(c)
	g, ctx := errgroup.WithContext(c.Request().Context())

	var books []models.Book
	var members []models.Member
	g.Go(func() error {
		var err error
		books, err = cl.ListBooks(ctx, models.BookFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		members, err = cl.ListMembers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail(c, err)
	}

	var available []models.Book
	for _, b := range books {
		if b.Available {
			available = append(available, b)
		}
	}

	return c.Render(http.StatusOK, "loan_form.html", map[string]any{
		"Title":   "New loan",
		"Books":   available,
		"Members": members,
	})
}

func (s *Server) createLoan(c echo.Context) error {
	in := models.LoanInput{
		BookID:   strings.TrimSpace(c.FormValue("bookId")),
		MemberID: strings.TrimSpace(c.FormValue("memberId")),
	}
	if in.BookID == "" || in.MemberID == "" {
		return s.fail(c, &validationError{"Book and member are required"})
	}

	if _, err := s.client(c).CreateLoan(c.Request().Context(), in); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/loans")
}

func (s *Server) returnLoan(c echo.Context) error {
	if _, err := s.client(c).ReturnLoan(c.Request().Context(), c.Param("id")); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/loans")
}

type validationError struct{ msg string }

func (e *validationError) Error() string { return e.msg }
