package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"libfront/internal/core/domain/models"
)

func (s *Server) listBooks(c echo.Context) error {
	filter := models.BookFilter{
		Title:     strings.TrimSpace(c.QueryParam("title")),
		Author:    strings.TrimSpace(c.QueryParam("author")),
		LibraryID: strings.TrimSpace(c.QueryParam("libraryId")),
	}

	books, err := s.client(c).ListBooks(c.Request().Context(), filter)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Render(http.StatusOK, "books_list.html", map[string]any{
		"Title":  "Books",
		"Books":  books,
		"Filter": filter,
	})
}

// showBookForm serves both the create form and, when :id is present,
// the edit form prefilled from the backend.
func (s *Server) showBookForm(c echo.Context) error {
	cl := s.client(c)
	ctx := c.Request().Context()

	libraries, err := cl.ListLibraries(ctx)
	if err != nil {
		return s.fail(c, err)
	}

	data := map[string]any{
		"Title":     "New book",
		"Libraries": libraries,
		"Action":    "/books",
	}

	if id := c.Param("id"); id != "" {
		book, err := cl.GetBook(ctx, id)
		if err != nil {
			return s.fail(c, err)
		}
		data["Title"] = "Edit book"
		data["Book"] = book
		data["Action"] = "/books/" + id
	}

	return c.Render(http.StatusOK, "book_form.html", data)
}

func (s *Server) createBook(c echo.Context) error {
	in := models.BookInput{
		Title:     strings.TrimSpace(c.FormValue("title")),
		Author:    strings.TrimSpace(c.FormValue("author")),
		ISBN:      strings.TrimSpace(c.FormValue("isbn")),
		LibraryID: strings.TrimSpace(c.FormValue("libraryId")),
	}
	if in.Title == "" || in.Author == "" || in.LibraryID == "" {
		return s.bookFormError(c, "Title, author and library are required", "/books")
	}

	if _, err := s.client(c).CreateBook(c.Request().Context(), in); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/books")
}

func (s *Server) updateBook(c echo.Context) error {
	id := c.Param("id")

	patch := models.BookPatch{}
	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		patch.Title = &v
	}
	if v := strings.TrimSpace(c.FormValue("author")); v != "" {
		patch.Author = &v
	}
	if v := strings.TrimSpace(c.FormValue("isbn")); v != "" {
		patch.ISBN = &v
	}
	if v := strings.TrimSpace(c.FormValue("libraryId")); v != "" {
		patch.LibraryID = &v
	}

	if _, err := s.client(c).UpdateBook(c.Request().Context(), id, patch); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/books")
}

// toggleBookAvailability flips the availability flag through a partial
// update; the value rendered afterwards is whatever the server decides.
func (s *Server) toggleBookAvailability(c echo.Context) error {
	id := c.Param("id")
	cl := s.client(c)
	ctx := c.Request().Context()

	book, err := cl.GetBook(ctx, id)
	if err != nil {
		return s.fail(c, err)
	}

	next := !book.Available
	if _, err := cl.UpdateBook(ctx, id, models.BookPatch{Available: &next}); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/books")
}

func (s *Server) deleteBook(c echo.Context) error {
	if err := s.client(c).DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/books")
}

func (s *Server) bookFormError(c echo.Context, msg, action string) error {
	libraries, err := s.client(c).ListLibraries(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.Render(http.StatusBadRequest, "book_form.html", map[string]any{
		"Title":     "New book",
		"Libraries": libraries,
		"Action":    action,
		"Error":     msg,
	})
}
