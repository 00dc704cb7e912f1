package presence

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatline/internal/common"
)

type fakeStore struct {
	typing   map[uint]bool
	lastSeen map[uint]time.Time
	err      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		typing:   make(map[uint]bool),
		lastSeen: make(map[uint]time.Time),
	}
}

func (f *fakeStore) SetTyping(ctx context.Context, userID uint, isTyping bool) error {
	if f.err != nil {
		return f.err
	}
	f.typing[userID] = isTyping
	return nil
}

func (f *fakeStore) IsTyping(ctx context.Context, userID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.typing[userID], nil
}

func (f *fakeStore) Touch(ctx context.Context, userID uint) error {
	if f.err != nil {
		return f.err
	}
	f.lastSeen[userID] = time.Now().UTC()
	return nil
}

func (f *fakeStore) LastSeen(ctx context.Context, userID uint) (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}
	return f.lastSeen[userID], nil
}

func serve(t *testing.T, store Store, userID uint, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	NewHandler(store).Routes(router)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req = req.WithContext(common.WithUserID(req.Context(), userID))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Typing(t *testing.T) {
	t.Run("records typing and touches last seen", func(t *testing.T) {
		store := newFakeStore()

		body, _ := json.Marshal(map[string]bool{"is_typing": true})
		rec := serve(t, store, 1, http.MethodPost, "/user/typing", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, store.typing[1])
		assert.False(t, store.lastSeen[1].IsZero())
	})

	t.Run("clears typing", func(t *testing.T) {
		store := newFakeStore()
		store.typing[1] = true

		body, _ := json.Marshal(map[string]bool{"is_typing": false})
		rec := serve(t, store, 1, http.MethodPost, "/user/typing", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, store.typing[1])
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(t, newFakeStore(), 1, http.MethodPost, "/user/typing", []byte("{nope"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Show(t *testing.T) {
	t.Run("typing with last seen", func(t *testing.T) {
		store := newFakeStore()
		store.typing[2] = true
		store.lastSeen[2] = time.Now().UTC()

		rec := serve(t, store, 1, http.MethodGet, "/user/2/presence", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			IsTyping   bool   `json:"is_typing"`
			LastSeenAt string `json:"last_seen_at"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.IsTyping)
		assert.NotEmpty(t, resp.LastSeenAt)
	})

	t.Run("never seen user omits last seen", func(t *testing.T) {
		rec := serve(t, newFakeStore(), 1, http.MethodGet, "/user/9/presence", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["is_typing"])
		assert.NotContains(t, resp, "last_seen_at")
	})
}
