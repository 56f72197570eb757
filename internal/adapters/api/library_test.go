package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libfront/internal/core/domain/models"
)

// recordingServer captures the last request and answers with a fixed
// JSON body.
type recordingServer struct {
	method string
	path   string
	query  map[string][]string
	body   []byte
}

func newRecordingClient(t *testing.T, responseJSON string) (*Client, *recordingServer) {
	t.Helper()
	rec := &recordingServer{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, responseJSON)
	}))
	t.Cleanup(srv.Close)

	client, err := New(srv.URL)
	require.NoError(t, err)
	return client, rec
}

func TestListBooks_FilterMapping(t *testing.T) {
	client, rec := newRecordingClient(t, `[{"id":"b1","title":"Dune","author":"Herbert","available":true,"libraryId":"l1"}]`)

	books, err := client.ListBooks(context.Background(), models.BookFilter{
		Title:     "Dune",
		LibraryID: "l1",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/books", rec.path)
	assert.Equal(t, []string{"Dune"}, rec.query["title"])
	assert.Equal(t, []string{"l1"}, rec.query["libraryId"])
	assert.NotContains(t, rec.query, "author")

	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.True(t, books[0].Available)
}

func TestUpdateBook_SendsOnlySetFields(t *testing.T) {
	client, rec := newRecordingClient(t, `{"id":"b1"}`)

	title := "Dune Messiah"
	_, err := client.UpdateBook(context.Background(), "b1", models.BookPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/books/b1", rec.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, map[string]any{"title": "Dune Messiah"}, sent)
}

func TestDeleteBook(t *testing.T) {
	client, rec := newRecordingClient(t, ``)

	require.NoError(t, client.DeleteBook(context.Background(), "b9"))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/books/b9", rec.path)
}

func TestUpdateMember_StripsEmptyPassword(t *testing.T) {
	client, rec := newRecordingClient(t, `{"id":"m1"}`)

	_, err := client.UpdateMember(context.Background(), "m1", models.MemberInput{
		Name:  "Ada",
		Email: "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/members/m1", rec.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.NotContains(t, sent, "password")
}

func TestUpdateMember_KeepsProvidedPassword(t *testing.T) {
	client, rec := newRecordingClient(t, `{"id":"m1"}`)

	_, err := client.UpdateMember(context.Background(), "m1", models.MemberInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "new-secret",
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "new-secret", sent["password"])
}

func TestListLoans_ActiveOnlyOnlySentWhenTrue(t *testing.T) {
	client, rec := newRecordingClient(t, `[]`)

	_, err := client.ListLoans(context.Background(), models.LoanFilter{MemberID: "m1"})
	require.NoError(t, err)
	assert.NotContains(t, rec.query, "activeOnly")
	assert.Equal(t, []string{"m1"}, rec.query["memberId"])

	_, err = client.ListLoans(context.Background(), models.LoanFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, rec.query["activeOnly"])
}

func TestCreateLoan(t *testing.T) {
	client, rec := newRecordingClient(t, `{"id":"loan1","bookId":"b1","memberId":"m1","returned":false}`)

	loan, err := client.CreateLoan(context.Background(), models.LoanInput{BookID: "b1", MemberID: "m1"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/loans", rec.path)
	assert.JSONEq(t, `{"bookId":"b1","memberId":"m1"}`, string(rec.body))
	assert.Equal(t, "loan1", loan.ID)
}

func TestReturnLoan(t *testing.T) {
	client, rec := newRecordingClient(t, `{"id":"loan1","returned":true}`)

	loan, err := client.ReturnLoan(context.Background(), "loan1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/loans/loan1/return", rec.path)
	assert.True(t, loan.Returned)
}

func TestCreateLibrary(t *testing.T) {
	client, rec := newRecordingClient(t, `{"id":"l1","name":"Central"}`)

	lib, err := client.CreateLibrary(context.Background(), models.LibraryInput{Name: "Central", Location: "Bogotá"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/libraries", rec.path)
	assert.Equal(t, "l1", lib.ID)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "Central", sent["name"])
	assert.Equal(t, "Bogotá", sent["location"])
}
