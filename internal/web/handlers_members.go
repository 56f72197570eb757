package web

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"libfront/internal/core/domain/models"
)

func (s *Server) listMembers(c echo.Context) error {
	members, err := s.client(c).ListMembers(c.Request().Context())
	if err != nil {
		return s.fail(c, err)
	}
	return c.Render(http.StatusOK, "members_list.html", map[string]any{
		"Title":   "Members",
		"Members": members,
	})
}

func (s *Server) showMemberForm(c echo.Context) error {
	data := map[string]any{
		"Title":  "New member",
		"Action": "/members",
	}

	if id := c.Param("id"); id != "" {
		member, err := s.client(c).GetMember(c.Request().Context(), id)
		if err != nil {
			return s.fail(c, err)
		}
		data["Title"] = "Edit member"
		data["Member"] = member
		data["Action"] = "/members/" + id
	}

	return c.Render(http.StatusOK, "member_form.html", data)
}

func (s *Server) createMember(c echo.Context) error {
	in := memberInput(c)
	if in.Name == "" || in.Email == "" {
		return c.Render(http.StatusBadRequest, "member_form.html", map[string]any{
			"Title":  "New member",
			"Action": "/members",
			"Error":  "Name and email are required",
		})
	}

	if _, err := s.client(c).CreateMember(c.Request().Context(), in); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/members")
}

// updateMember sends a full PUT. A blank password field means "keep
// the current one"; MemberInput strips it from the payload.
func (s *Server) updateMember(c echo.Context) error {
	in := memberInput(c)

	if _, err := s.client(c).UpdateMember(c.Request().Context(), c.Param("id"), in); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/members")
}

func (s *Server) deleteMember(c echo.Context) error {
	if err := s.client(c).DeleteMember(c.Request().Context(), c.Param("id")); err != nil {
		return s.fail(c, err)
	}
	return c.Redirect(http.StatusSeeOther, "/members")
}

func memberInput(c echo.Context) models.MemberInput {
	return models.MemberInput{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		Phone:    strings.TrimSpace(c.FormValue("phone")),
		Password: c.FormValue("password"),
	}
}
