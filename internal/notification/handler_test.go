package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clothesshop/client-api/internal/auth"
	"github.com/clothesshop/client-api/internal/dispatch"
	"github.com/clothesshop/client-api/internal/user"
)

func newTestRouter(t *testing.T, store Store) http.Handler {
	t.Helper()

	d := dispatch.New()
	RegisterHandlers(d, store)
	handler := NewHandler(d)

	r := chi.NewRouter()
	r.Get("/client/notifications", handler.List)
	r.Patch("/client/notifications/read/{id}", handler.MarkAsRead)
	return r
}

func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	identity := user.Public{ID: userID, Email: "a@x.com"}
	return req.WithContext(auth.ContextWithIdentity(req.Context(), identity))
}

func TestHandler_List(t *testing.T) {
	owner := uuid.New()
	store := &fakeStore{
		notifications: []Notification{
			{ID: uuid.New(), UserID: owner, Kind: KindArticleLiked, Message: "liked"},
			{ID: uuid.New(), UserID: uuid.New(), Kind: KindArticleLiked, Message: "foreign"},
		},
	}
	router := newTestRouter(t, store)

	t.Run("authenticated", func(t *testing.T) {
		req := asUser(httptest.NewRequest(http.MethodGet, "/client/notifications", nil), owner)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []Notification
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, owner, got[0].UserID)
	})

	t.Run("no identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/client/notifications", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_MarkAsRead(t *testing.T) {
	owner := uuid.New()
	notificationID := uuid.New()
	foreignID := uuid.New()

	newStore := func() *fakeStore {
		return &fakeStore{
			notifications: []Notification{
				{ID: notificationID, UserID: owner, Kind: KindArticleComment, Message: "commented"},
				{ID: foreignID, UserID: uuid.New(), Kind: KindArticleLiked, Message: "foreign"},
			},
		}
	}

	t.Run("owner marks read", func(t *testing.T) {
		router := newTestRouter(t, newStore())

		req := asUser(httptest.NewRequest(http.MethodPatch, "/client/notifications/read/"+notificationID.String(), nil), owner)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got Notification
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Read)
		assert.Equal(t, notificationID, got.ID)
	})

	t.Run("another user's notification", func(t *testing.T) {
		router := newTestRouter(t, newStore())

		req := asUser(httptest.NewRequest(http.MethodPatch, "/client/notifications/read/"+foreignID.String(), nil), owner)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router := newTestRouter(t, newStore())

		req := asUser(httptest.NewRequest(http.MethodPatch, "/client/notifications/read/not-a-uuid", nil), owner)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		router := newTestRouter(t, newStore())

		req := httptest.NewRequest(http.MethodPatch, "/client/notifications/read/"+notificationID.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
