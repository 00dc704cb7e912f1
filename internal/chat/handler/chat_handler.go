// Package handler exposes the messaging endpoints consumed by the chat
// pages and their polling loop.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chatline/internal/chat/service"
	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

// UserProvider is the slice of the user layer the chat pages need.
type UserProvider interface {
	UserByID(ctx context.Context, id uint) (*dbmysql.User, error)
	List(ctx context.Context, excludeID uint) ([]*dbmysql.User, error)
}

type ChatHandler struct {
	messages service.MessageService
	users    UserProvider
}

func NewChatHandler(messages service.MessageService, users UserProvider) *ChatHandler {
	return &ChatHandler{messages: messages, users: users}
}

// Routes mounts the chat endpoints on an authenticated router.
func (h *ChatHandler) Routes(r *mux.Router) {
	r.HandleFunc("/chat", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/chat/{userId:[0-9]+}", h.Show).Methods(http.MethodGet)
	r.HandleFunc("/messages", h.Store).Methods(http.MethodPost)
	r.HandleFunc("/messages/conversation/{userId:[0-9]+}", h.Conversation).Methods(http.MethodGet)
	r.HandleFunc("/messages/{id:[0-9]+}", h.Destroy).Methods(http.MethodDelete)
}

// Index returns the users the caller can start a conversation with.
func (h *ChatHandler) Index(w http.ResponseWriter, r *http.Request) {
	authID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	users, err := h.users.List(r.Context(), authID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// Show returns the page-load payload for one conversation: the other
// user's profile plus the full ordered history.
func (h *ChatHandler) Show(w http.ResponseWriter, r *http.Request) {
	authID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	otherID, err := pathID(r, "userId")
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	otherUser, err := h.users.UserByID(r.Context(), otherID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	messages, err := h.messages.Conversation(r.Context(), authID, otherID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"otherUser": otherUser,
		"messages":  messages,
	})
}

type storeMessageRequest struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

// Store persists a new message and returns the full record, assigned id
// and timestamp included.
func (h *ChatHandler) Store(w http.ResponseWriter, r *http.Request) {
	authID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	var req storeMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	msg, err := h.messages.Send(r.Context(), authID, req.ReceiverID, req.Content)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"message": msg})
}

// Conversation is the polling endpoint: the same full ordered history the
// page loads with, as JSON.
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	authID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	otherID, err := pathID(r, "userId")
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}

	messages, err := h.messages.Conversation(r.Context(), authID, otherID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

type destroyMessageRequest struct {
	ForBoth bool `json:"for_both"`
}

// Destroy applies one of the two soft-delete transitions; sender only.
func (h *ChatHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	authID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid message id"})
		return
	}

	// for_both defaults to false when the body is empty
	var req destroyMessageRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	msg, err := h.messages.Delete(r.Context(), id, authID, req.ForBoth)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "id": msg.ID})
}

func pathID(r *http.Request, name string) (uint, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
