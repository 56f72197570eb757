package ports

import (
	"context"

	"libfront/internal/core/domain/models"
)

// TokenStore holds the process-wide bearer token. Implementations must
// be safe for concurrent readers.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// LibraryService is everything the UI layers need from the backend.
// The API adapter implements it; tests substitute fakes.
type LibraryService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout() error

	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (models.Book, error)
	CreateBook(ctx context.Context, in models.BookInput) (models.Book, error)
	UpdateBook(ctx context.Context, id string, patch models.BookPatch) (models.Book, error)
	DeleteBook(ctx context.Context, id string) error

	ListLibraries(ctx context.Context) ([]models.Library, error)
	GetLibrary(ctx context.Context, id string) (models.Library, error)
	CreateLibrary(ctx context.Context, in models.LibraryInput) (models.Library, error)
	UpdateLibrary(ctx context.Context, id string, patch models.LibraryPatch) (models.Library, error)
	DeleteLibrary(ctx context.Context, id string) error

	ListMembers(ctx context.Context) ([]models.Member, error)
	GetMember(ctx context.Context, id string) (models.Member, error)
	CreateMember(ctx context.Context, in models.MemberInput) (models.Member, error)
	UpdateMember(ctx context.Context, id string, in models.MemberInput) (models.Member, error)
	DeleteMember(ctx context.Context, id string) error

	ListLoans(ctx context.Context, filter models.LoanFilter) ([]models.Loan, error)
	CreateLoan(ctx context.Context, in models.LoanInput) (models.Loan, error)
	ReturnLoan(ctx context.Context, id string) (models.Loan, error)
}
