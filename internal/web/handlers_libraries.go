package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"libfront/internal/core/domain/models"
)

func (s *Server) listLibraries(c echo.Context) error {
	libraries, err := s.client(c).ListLibraries(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.Render(http.StatusOK, "libraries_list.html", map[string]any{
		"Title":     "Libraries",
		"Libraries": libraries,
	})
}

func (s *Server) showLibraryForm(c echo.Context) error {
	data := map[string]any{
		"Title":  "New library",
		"Action": "/libraries",
	}

	if id := c.Param("id"); id != "" {
		library, err := s.client(c).GetLibrary(c.Request().Context(), id)
		if err != nil {
			return s.fail(c, err)
		}
		data["Title"] = "Edit library"
		data["Library"] = library
		data["Action"] = "/libraries/" + id
	}

	return c.Render(http.StatusOK, "library_form.html", data)
}

func (s *Server) createLibrary(c echo.Context) error {
	in := models.LibraryInput{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Location:    strings.TrimSpace(c.FormValue("location")),
	}
	if in.Name == "" {
		return c.Render(http.StatusBadRequest, "library_form.html", map[string]any{
			"Title":  "New library",
			"Action": "/libraries",
			"Error":  "Name is required",
		})
	}

	if _, err := s.client(c).CreateLibrary(c.Request().Context(), in); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/libraries")
}

func (s *Server) updateLibrary(c echo.Context) error {
	id := c.Param("id")

	patch := models.LibraryPatch{}
	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		patch.Name = &v
	}
	if v := strings.TrimSpace(c.FormValue("description")); v != "" {
		patch.Description = &v
	}
	if v := strings.TrimSpace(c.FormValue("location")); v != "" {
		patch.Location = &v
	}

	if _, err := s.client(c).UpdateLibrary(c.Request().Context(), id, patch); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/libraries")
}

func (s *Server) deleteLibrary(c echo.Context) error {
	if err := s.client(c).DeleteLibrary(c.Request().Context(), c.Param("id")); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/libraries")
}
