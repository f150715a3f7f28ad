package article

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clothesshop/client-api/internal/auth"
	"github.com/clothesshop/client-api/internal/logging"
	"github.com/clothesshop/client-api/internal/user"
)

func newTestRouter(store Store) http.Handler {
	svc := NewService(store, newFakeCache(), &fakeNotifier{}, logging.NewLogger(true))
	handler := NewHandler(svc)

	r := chi.NewRouter()
	r.Get("/client/articles", handler.List)
	r.Get("/client/articles/{id}", handler.Get)
	r.Post("/client/articles", handler.Create)
	r.Put("/client/articles/{id}", handler.Update)
	r.Delete("/client/articles/{id}", handler.Delete)
	r.Get("/client/articles/{id}/comments", handler.ListComments)
	r.Post("/client/articles/{id}/comments", handler.CreateComment)
	r.Delete("/client/comments/{id}", handler.DeleteComment)
	r.Put("/client/articles/{id}/like", handler.ToggleLike)
	return r
}

func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	identity := user.Public{ID: userID, Email: "a@x.com"}
	return req.WithContext(auth.ContextWithIdentity(req.Context(), identity))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestHandler_GetArticle(t *testing.T) {
	author := uuid.New()
	a := newTestArticle(author)
	router := newTestRouter(newFakeStore(a))

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/client/articles/"+a.ID.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, a.Title, got.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/client/articles/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id reads as not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/client/articles/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_CreateArticle(t *testing.T) {
	author := uuid.New()

	t.Run("valid body", func(t *testing.T) {
		router := newTestRouter(newFakeStore())

		body := jsonBody(t, CreateArticleRequest{
			Title:      "Summer lookbook",
			Content:    "body",
			Categories: []string{"fashion"},
		})
		req := asUser(httptest.NewRequest(http.MethodPost, "/client/articles", body), author)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, author, got.AuthorID)
		assert.True(t, got.IsActive)
	})

	t.Run("missing title", func(t *testing.T) {
		router := newTestRouter(newFakeStore())

		body := jsonBody(t, CreateArticleRequest{Content: "body"})
		req := asUser(httptest.NewRequest(http.MethodPost, "/client/articles", body), author)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		router := newTestRouter(newFakeStore())

		body := jsonBody(t, CreateArticleRequest{Title: "t", Content: "c"})
		req := httptest.NewRequest(http.MethodPost, "/client/articles", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_UpdateArticle(t *testing.T) {
	author := uuid.New()
	a := newTestArticle(author)

	t.Run("author updates", func(t *testing.T) {
		router := newTestRouter(newFakeStore(a))

		body := jsonBody(t, UpdateArticleRequest{Title: "Winter lookbook", Content: "body"})
		req := asUser(httptest.NewRequest(http.MethodPut, "/client/articles/"+a.ID.String(), body), author)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Winter lookbook", got.Title)
	})

	t.Run("somebody else's article", func(t *testing.T) {
		router := newTestRouter(newFakeStore(a))

		body := jsonBody(t, UpdateArticleRequest{Title: "Hijacked", Content: "body"})
		req := asUser(httptest.NewRequest(http.MethodPut, "/client/articles/"+a.ID.String(), body), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Comments(t *testing.T) {
	author := uuid.New()
	commenter := uuid.New()
	a := newTestArticle(author)

	t.Run("create and list", func(t *testing.T) {
		store := newFakeStore(a)
		router := newTestRouter(store)

		body := jsonBody(t, CreateCommentRequest{Content: "nice one"})
		req := asUser(httptest.NewRequest(http.MethodPost, "/client/articles/"+a.ID.String()+"/comments", body), commenter)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		// Listing is public, no identity attached
		req = httptest.NewRequest(http.MethodGet, "/client/articles/"+a.ID.String()+"/comments", nil)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []Comment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "nice one", got[0].Content)
	})

	t.Run("empty comment", func(t *testing.T) {
		router := newTestRouter(newFakeStore(a))

		body := jsonBody(t, CreateCommentRequest{})
		req := asUser(httptest.NewRequest(http.MethodPost, "/client/articles/"+a.ID.String()+"/comments", body), commenter)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete own comment only", func(t *testing.T) {
		store := newFakeStore(a)
		router := newTestRouter(store)

		comment, err := store.CreateComment(t.Context(), a.ID, commenter, "mine")
		require.NoError(t, err)

		req := asUser(httptest.NewRequest(http.MethodDelete, "/client/comments/"+comment.ID.String(), nil), uuid.New())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		req = asUser(httptest.NewRequest(http.MethodDelete, "/client/comments/"+comment.ID.String(), nil), commenter)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_ToggleLike(t *testing.T) {
	author := uuid.New()
	liker := uuid.New()
	a := newTestArticle(author)
	router := newTestRouter(newFakeStore(a))

	doToggle := func(t *testing.T) *httptest.ResponseRecorder {
		t.Helper()
		req := asUser(httptest.NewRequest(http.MethodPut, "/client/articles/"+a.ID.String()+"/like", nil), liker)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := doToggle(t)
	require.Equal(t, http.StatusOK, rec.Code)

	var state LikeState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.Liked)
	assert.Equal(t, 1, state.Count)

	rec = doToggle(t)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.False(t, state.Liked)
	assert.Equal(t, 0, state.Count)
}
