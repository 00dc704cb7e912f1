package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSON(rec, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestWriteError(t *testing.T) {
	t.Run("validation error -> 422", func(t *testing.T) {
		rec := httptest.NewRecorder()
		verr := NewValidationError("content", "The content field is required.")

		WriteError(rec, verr)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body struct {
			Message string            `json:"message"`
			Errors  map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "The given data was invalid.", body.Message)
		assert.Equal(t, "The content field is required.", body.Errors["content"])
	})

	t.Run("not found -> 404", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteError(rec, NewNotFoundError("message", 42))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "message 42 not found")
	})

	t.Run("authorization -> 403", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteError(rec, NewAuthorizationError("only the sender may delete a message"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown error -> 500", func(t *testing.T) {
		rec := httptest.NewRecorder()

		WriteError(rec, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "internal server error")
	})
}
