package api

import (
	"context"
	"strconv"

	"libfront/internal/core/domain/models"
	"libfront/internal/core/domain/ports"
)

// Ensure Client implements LibraryService
var _ ports.LibraryService = (*Client)(nil)

func (c *Client) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	query := Query{
		"title":     filter.Title,
		"author":    filter.Author,
		"libraryId": filter.LibraryID,
	}
	var books []models.Book
	if err := c.Get(ctx, "/books", query, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id string) (models.Book, error) {
	var book models.Book
	err := c.Get(ctx, "/books/"+id, nil, &book)
	return book, err
}

func (c *Client) CreateBook(ctx context.Context, in models.BookInput) (models.Book, error) {
	var book models.Book
	err := c.Post(ctx, "/books", in, &book)
	return book, err
}

func (c *Client) UpdateBook(ctx context.Context, id string, patch models.BookPatch) (models.Book, error) {
	var book models.Book
	err := c.Patch(ctx, "/books/"+id, patch, &book)
	return book, err
}

func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.Delete(ctx, "/books/"+id)
}

func (c *Client) ListLibraries(ctx context.Context) ([]models.Library, error) {
	var libraries []models.Library
	if err := c.Get(ctx, "/libraries", nil, &libraries); err != nil {
		return nil, err
	}
	return libraries, nil
}

func (c *Client) GetLibrary(ctx context.Context, id string) (models.Library, error) {
	var library models.Library
	err := c.Get(ctx, "/libraries/"+id, nil, &library)
	return library, err
}

func (c *Client) CreateLibrary(ctx context.Context, in models.LibraryInput) (models.Library, error) {
	var library models.Library
	err := c.Post(ctx, "/libraries", in, &library)
	return library, err
}

func (c *Client) UpdateLibrary(ctx context.Context, id string, patch models.LibraryPatch) (models.Library, error) {
	var library models.Library
	err := c.Patch(ctx, "/libraries/"+id, patch, &library)
	return library, err
}

func (c *Client) DeleteLibrary(ctx context.Context, id string) error {
	return c.Delete(ctx, "/libraries/"+id)
}

func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := c.Get(ctx, "/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) GetMember(ctx context.Context, id string) (models.Member, error) {
	var member models.Member
	err := c.Get(ctx, "/members/"+id, nil, &member)
	return member, err
}

func (c *Client) CreateMember(ctx context.Context, in models.MemberInput) (models.Member, error) {
	var member models.Member
	err := c.Post(ctx, "/members", in, &member)
	return member, err
}

// UpdateMember sends a full replacement via PUT. MemberInput drops an
// empty password on the wire, so leaving the field blank keeps the
// member's current password.
func (c *Client) UpdateMember(ctx context.Context, id string, in models.MemberInput) (models.Member, error) {
	var member models.Member
	err := c.Put(ctx, "/members/"+id, in, &member)
	return member, err
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.Delete(ctx, "/members/"+id)
}

func (c *Client) ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.Loan, error) {
	query := Query{
		"bookId":   filter.BookID,
		"memberId": filter.MemberID,
	}
	if filter.ActiveOnly {
		query["activeOnly"] = strconv.FormatBool(true)
	}
	var loans []models.Loan
	if err := c.Get(ctx, "/loans", query, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

func (c *Client) CreateLoan(ctx context.Context, in models.LoanInput) (models.Loan, error) {
	var loan models.Loan
	err := c.Post(ctx, "/loans", in, &loan)
	return loan, err
}

func (c *Client) ReturnLoan(ctx context.Context, id string) (models.Loan, error) {
	var loan models.Loan
	err := c.Post(ctx, "/loans/"+id+"/return", nil, &loan)
	return loan, err
}
