package presence

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"chatline/internal/common"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/user/typing", h.Typing).Methods(http.MethodPost)
	r.HandleFunc("/user/{userId:[0-9]+}/presence", h.Show).Methods(http.MethodGet)
}

type typingRequest struct {
	IsTyping bool `json:"is_typing"`
}

// Typing records the caller's typing state. The client fires these
// signals without waiting for the result, so failures only get logged as
// a non-ok status.
func (h *Handler) Typing(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	var req typingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.store.SetTyping(r.Context(), userID, req.IsTyping); err != nil {
		common.WriteError(w, err)
		return
	}
	if err := h.store.Touch(r.Context(), userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Show returns another user's typing flag and last-seen timestamp.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	raw := mux.Vars(r)["userId"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	typing, err := h.store.IsTyping(r.Context(), uint(id))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	lastSeen, err := h.store.LastSeen(r.Context(), uint(id))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	resp := map[string]interface{}{"is_typing": typing}
	if !lastSeen.IsZero() {
		resp["last_seen_at"] = lastSeen.Format(time.RFC3339)
	}
	common.WriteJSON(w, http.StatusOK, resp)
}
