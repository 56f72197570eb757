package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libfront/internal/adapters/token"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, opts...)
	require.NoError(t, err)
	return client
}

func TestNew_RejectsEmptyBaseURL(t *testing.T) {
	_, err := New("   ")
	require.Error(t, err)
}

func TestBuildURL_OmitsBlankQueryValues(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	err := client.Get(context.Background(), "/books", Query{
		"title":     "go & tea",
		"author":    "",
		"libraryId": "  ",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"go & tea"}, gotQuery["title"])
	assert.NotContains(t, gotQuery, "author")
	assert.NotContains(t, gotQuery, "libraryId")
}

func TestDo_SetsStandardHeaders(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Get(context.Background(), "/books", nil, nil))

	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "no-store", got.Get("Cache-Control"))
	assert.Equal(t, "no-cache", got.Get("Pragma"))
	assert.Empty(t, got.Get("Authorization"))
}

func TestDo_DecodesJSONResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		fmt.Fprint(w, `{"id":"b1","title":"Dune"}`)
	})

	var out struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, client.Get(context.Background(), "/books/b1", nil, &out))
	assert.Equal(t, "b1", out.ID)
	assert.Equal(t, "Dune", out.Title)
}

func TestDo_ReturnsRawTextForNonJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "pong")
	})

	var out string
	require.NoError(t, client.Get(context.Background(), "/ping", nil, &out))
	assert.Equal(t, "pong", out)
}

func TestDo_EmptyBodyLeavesTargetUntouched(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	out := struct{ ID string }{ID: "unchanged"}
	require.NoError(t, client.Get(context.Background(), "/books", nil, &out))
	assert.Equal(t, "unchanged", out.ID)
}

func TestDo_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
	}{
		{
			name:        "json message field",
			status:      http.StatusNotFound,
			contentType: "application/json",
			body:        `{"message":"book not found"}`,
			wantMessage: "book not found",
		},
		{
			name:        "raw text body",
			status:      http.StatusBadGateway,
			contentType: "text/plain",
			body:        "  upstream exploded \n",
			wantMessage: "upstream exploded",
		},
		{
			name:        "malformed json falls back to raw text",
			status:      http.StatusInternalServerError,
			contentType: "application/json",
			body:        `{"message": broken`,
			wantMessage: `{"message": broken`,
		},
		{
			name:        "empty body falls back to status line",
			status:      http.StatusServiceUnavailable,
			body:        "",
			wantMessage: "HTTP 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			err := client.Get(context.Background(), "/books", nil, nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := client.Get(context.Background(), "/books", nil, nil)
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsUnauthorized(errors.New("boom")))
	assert.False(t, IsUnauthorized(&Error{Status: http.StatusForbidden}))
}

func TestLogin_StoresTokenAndAttachesIt(t *testing.T) {
	var gotAuth string
	store := token.NewMemory()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"accessToken":"abc123"}`)
		default:
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}
	}, WithTokenStore(store))

	tok, err := client.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok)
	assert.Equal(t, "abc123", store.Token())

	require.NoError(t, client.Get(context.Background(), "/books", nil, nil))
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestLogin_AcceptsEveryTokenFieldName(t *testing.T) {
	for _, field := range []string{"token", "accessToken", "access_token"} {
		t.Run(field, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintf(w, `{"%s":"tok-1"}`, field)
			})

			tok, err := client.Login(context.Background(), "a@b.c", "pw")
			require.NoError(t, err)
			assert.Equal(t, "tok-1", tok)
		})
	}
}

func TestLogin_NoRecognizableTokenField(t *testing.T) {
	store := token.NewMemory()
	require.NoError(t, store.SetToken("previous"))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"user":{"id":"u1"}}`)
	}, WithTokenStore(store))

	_, err := client.Login(context.Background(), "a@b.c", "pw")
	require.ErrorIs(t, err, ErrTokenMissing)

	// A failed extraction must not disturb the stored token.
	assert.Equal(t, "previous", store.Token())
}

func TestLogout_ClearsStoredToken(t *testing.T) {
	var gotAuth string
	store := token.NewMemory()
	require.NoError(t, store.SetToken("abc123"))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}, WithTokenStore(store))

	require.NoError(t, client.Logout())
	assert.Empty(t, store.Token())

	require.NoError(t, client.Get(context.Background(), "/books", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestTokenProvider_TakesPrecedenceWhenNonEmpty(t *testing.T) {
	var gotAuth string
	store := token.NewMemory()
	require.NoError(t, store.SetToken("stored"))

	provided := "override"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}, WithTokenStore(store), WithTokenProvider(func() string { return provided }))

	require.NoError(t, client.Get(context.Background(), "/books", nil, nil))
	assert.Equal(t, "Bearer override", gotAuth)

	// An empty provider result falls back to the stored token.
	provided = ""
	require.NoError(t, client.Get(context.Background(), "/books", nil, nil))
	assert.Equal(t, "Bearer stored", gotAuth)
}

func TestDo_NeverCaches(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	})

	require.NoError(t, client.Get(context.Background(), "/books", Query{"title": "x"}, nil))
	require.NoError(t, client.Get(context.Background(), "/books", Query{"title": "x"}, nil))
	assert.Equal(t, 2, hits)
}

func TestDo_TransportErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := New(srv.URL)
	require.NoError(t, err)
	srv.Close()

	err = client.Get(context.Background(), "/books", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failures must not be typed HTTP errors")
}
