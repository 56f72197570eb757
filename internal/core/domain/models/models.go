package models

import "time"

// Book is a catalog entry owned by exactly one library. Availability is
// derived server-side: true iff no open loan references the book.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn,omitempty"`
	Available bool      `json:"available"`
	LibraryID string    `json:"libraryId"`
	Library   *Library  `json:"library,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Library struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Books       []Book    `json:"books,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Loan links one book to one member; it stays open until a return
// event sets ReturnDate and Returned.
type Loan struct {
	ID         string     `json:"id"`
	BookID     string     `json:"bookId"`
	MemberID   string     `json:"memberId"`
	LoanDate   time.Time  `json:"loanDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`
	Returned   bool       `json:"returned"`
	Book       *Book      `json:"book,omitempty"`
	Member     *Member    `json:"member,omitempty"`
	Library    *Library   `json:"library,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// BookInput is the create payload for POST /books.
type BookInput struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn,omitempty"`
	LibraryID string `json:"libraryId"`
}

// BookPatch carries a partial update for PATCH /books/:id. Nil fields
// are omitted from the request body.
type BookPatch struct {
	Title     *string `json:"title,omitempty"`
	Author    *string `json:"author,omitempty"`
	ISBN      *string `json:"isbn,omitempty"`
	Available *bool   `json:"available,omitempty"`
	LibraryID *string `json:"libraryId,omitempty"`
}

type LibraryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

type LibraryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// MemberInput is used both for POST /members and PUT /members/:id.
// An empty password is stripped from the payload before sending, so an
// update without a password change never overwrites the stored one.
type MemberInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}

type LoanInput struct {
	BookID   string `json:"bookId"`
	MemberID string `json:"memberId"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BookFilter narrows GET /books. Empty fields are not sent.
type BookFilter struct {
	Title     string
	Author    string
	LibraryID string
}

// LoanFilter narrows GET /loans. ActiveOnly is only sent when true.
type LoanFilter struct {
	BookID     string
	MemberID   string
	ActiveOnly bool
}

// DashboardStats are display aggregates derived from fetched lists;
// nothing here is computed server-side.
type DashboardStats struct {
	TotalBooks     int
	AvailableBooks int
	TotalLibraries int
	TotalMembers   int
	TotalLoans     int
	ActiveLoans    int

	AvailablePct  float64
	ActiveLoanPct float64
}

// ComputeStats derives the dashboard counters and percentages from the
// raw entity lists.
func ComputeStats(books []Book, libraries []Library, members []Member, loans []Loan) DashboardStats {
	s := DashboardStats{
		TotalBooks:     len(books),
		TotalLibraries: len(libraries),
		TotalMembers:   len(members),
		TotalLoans:     len(loans),
	}
	for _, b := range books {
		if b.Available {
			s.AvailableBooks++
		}
	}
	for _, l := range loans {
		if !l.Returned {
			s.ActiveLoans++
		}
	}
	if s.TotalBooks > 0 {
		s.AvailablePct = 100 * float64(s.AvailableBooks) / float64(s.TotalBooks)
	}
	if s.TotalLoans > 0 {
		s.ActiveLoanPct = 100 * float64(s.ActiveLoans) / float64(s.TotalLoans)
	}
	return s
}
